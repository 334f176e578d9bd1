package layout

// Child is an arrangeable box owned by the host widget framework. A panel
// holds non-owning references to its children; it only positions them.
// All methods are called on the UI goroutine.
type Child interface {
	// Name identifies the child among its siblings. Float targets refer
	// to children by name.
	Name() string
	Bounds() Rect
	SetBounds(Rect)
	MinSize() Size
	// MaxSize returns the maximum size; 0 in a dimension means unbounded.
	MaxSize() Size
	Visible() bool
	// PreferredSize returns the size the child would like given the
	// available space.
	PreferredSize(available Size) Size
}

// ZOrderer changes the paint order of siblings. Hosts that do not manage
// stacking order simply don't provide one.
type ZOrderer interface {
	// BringAbove moves child so it paints after (on top of) target.
	BringAbove(child, target Child)
	// SendBelow moves child so it paints before (under) target.
	SendBelow(child, target Child)
}

// Invalidator receives repaint requests. Suspend and Resume bracket a
// layout pass so child-level notifications coalesce into one repaint.
type Invalidator interface {
	SuspendPaint()
	ResumePaint()
	Invalidate()
}

// ChangeNotifier is the designer host's component-change service.
type ChangeNotifier interface {
	ComponentChanging(c Child, property string)
	ComponentChanged(c Child, property string, old, new any)
}

// SelectionProvider exposes the designer's current selection.
type SelectionProvider interface {
	Selected() []Child
}

// Dispatcher posts work to the next turn of the UI message queue.
type Dispatcher interface {
	Post(fn func())
}

// Level is a diagnostics severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Diagnostics receives log output from the layout engine. keyvals are
// alternating key/value pairs.
type Diagnostics interface {
	Log(level Level, msg string, keyvals ...any)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Log(Level, string, ...any) {}

// NopDiagnostics discards everything.
var NopDiagnostics Diagnostics = nopDiagnostics{}

// immediate runs posted work synchronously. It is the fallback when no
// Dispatcher is configured.
type immediate struct{}

func (immediate) Post(fn func()) { fn() }
