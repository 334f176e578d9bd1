package designer

import "github.com/agiangrant/stacklayout/layout"

// Connector is the adorner line from a float to the point it is anchored
// to on its target.
type Connector struct {
	Source    string
	Target    string
	Alignment layout.FloatAlignment
	From      layout.Point // float origin
	To        layout.Point // connector point on the target
}

// Connectors returns a line for every visible float whose target
// resolves, in child order.
func Connectors(p *layout.Panel) []Connector {
	var out []Connector
	for _, c := range p.Children() {
		a := p.Attributes(c)
		if !a.Floating || !c.Visible() {
			continue
		}
		t := p.Find(a.FloatTarget)
		if t == nil || t == c || !t.Visible() {
			continue
		}
		b := c.Bounds()
		out = append(out, Connector{
			Source:    c.Name(),
			Target:    t.Name(),
			Alignment: a.FloatAlignment,
			From:      b.Origin(),
			To:        layout.Connector(t.Bounds(), a.FloatAlignment, b.Size()),
		})
	}
	return out
}
