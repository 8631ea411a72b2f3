package extract

// Method identifies how text is pulled out of a candidate file. It is
// chosen once per run, in fixed priority order, and immutable afterwards.
type Method string

const (
	MethodPandoc      Method = "pandoc"
	MethodLynx        Method = "lynx"
	MethodPassthrough Method = "passthrough"
)

// probeOrder is the fixed preference order for method selection
var probeOrder = []Method{MethodPandoc, MethodLynx, MethodPassthrough}

// String returns the method name
func (m Method) String() string {
	return string(m)
}
