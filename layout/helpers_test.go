package layout

// box is a minimal Child used by the tests.
type box struct {
	name     string
	bounds   Rect
	min, max Size
	hidden   bool
	pref     Size
	onSet    func(Rect)
	sets     int
}

func newBox(name string, w, h int) *box {
	return &box{name: name, bounds: Rect{W: w, H: h}}
}

func (b *box) Name() string { return b.name }
func (b *box) Bounds() Rect { return b.bounds }
func (b *box) MinSize() Size { return b.min }
func (b *box) MaxSize() Size { return b.max }
func (b *box) Visible() bool { return !b.hidden }
func (b *box) PreferredSize(Size) Size { return b.pref }

func (b *box) SetBounds(r Rect) {
	b.bounds = r
	b.sets++
	if b.onSet != nil {
		b.onSet(r)
	}
}

// paintOrder is a ZOrderer over a name list, back to front.
type paintOrder struct {
	names []string
}

func (o *paintOrder) index(c Child) int {
	for i, n := range o.names {
		if n == c.Name() {
			return i
		}
	}
	return -1
}

func (o *paintOrder) remove(i int) string {
	n := o.names[i]
	o.names = append(o.names[:i], o.names[i+1:]...)
	return n
}

func (o *paintOrder) insert(i int, n string) {
	o.names = append(o.names, "")
	copy(o.names[i+1:], o.names[i:])
	o.names[i] = n
}

func (o *paintOrder) BringAbove(child, target Child) {
	ci, ti := o.index(child), o.index(target)
	if ci < 0 || ti < 0 || ci > ti {
		return
	}
	n := o.remove(ci)
	o.insert(o.index(target)+1, n)
}

func (o *paintOrder) SendBelow(child, target Child) {
	ci, ti := o.index(child), o.index(target)
	if ci < 0 || ti < 0 || ci < ti {
		return
	}
	n := o.remove(ci)
	o.insert(o.index(target), n)
}

// countingInvalidator records paint notifications.
type countingInvalidator struct {
	suspends, resumes, invalidates int
	depth                          int
	invalidatedWhileSuspended      bool
}

func (c *countingInvalidator) SuspendPaint() {
	c.suspends++
	c.depth++
}

func (c *countingInvalidator) ResumePaint() {
	c.resumes++
	c.depth--
}

func (c *countingInvalidator) Invalidate() {
	c.invalidates++
	if c.depth > 0 {
		c.invalidatedWhileSuspended = true
	}
}

// recordingDiag collects log messages.
type recordingDiag struct {
	entries []string
}

func (r *recordingDiag) Log(level Level, msg string, keyvals ...any) {
	if level >= LevelWarn {
		r.entries = append(r.entries, msg)
	}
}

// recordingNotifier records change notifications.
type recordingNotifier struct {
	changing []string
	changed  []string
}

func (r *recordingNotifier) ComponentChanging(c Child, prop string) {
	r.changing = append(r.changing, c.Name()+"."+prop)
}

func (r *recordingNotifier) ComponentChanged(c Child, prop string, old, new any) {
	r.changed = append(r.changed, c.Name()+"."+prop)
}
