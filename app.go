package glhud

import (
	"os"
	"sync"

	"github.com/elliotmr/glhud/paint"
	"github.com/elliotmr/glhud/ui"
	"github.com/elliotmr/glhud/w32/types/wm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type appData[T any] struct {
	ui        UIFn[T]
	glContext HGLRC
	window    HWND
	painter   *paint.Painter
	collector InputCollector
	ctx       ui.Context

	clientW, clientH uint32
	haveClientRect   bool

	state T
}

// App is the process-wide application record. Render runs on the host's
// present thread and WndProc on its message-pump thread; one mutex over the
// whole record serializes them, since both mutate the collector and the
// framework context. Nothing blocks while it is held beyond the synchronous
// GL call sequence of one frame.
//
// The record has exactly two states: uninitialized (only Init is valid) and
// ready. The transition happens once and is never reversed.
type App[T any] struct {
	mu       sync.Mutex
	platform Platform
	log      zerolog.Logger
	data     *appData[T]
}

// NewWithPlatform wires an App against an explicit platform, mainly for
// tests and alternate drivers. Production overlays use New.
func NewWithPlatform[T any](p Platform, log zerolog.Logger) *App[T] {
	return &App[T]{platform: p, log: log}
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Ready reports whether Init has completed, i.e. whether Render and WndProc
// may be called.
func (a *App[T]) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data != nil
}

// Init transitions the record to ready. It must be called exactly once, with
// the device context the host presents on and the window it belongs to. It
// resolves the GL entry points, creates the overlay's own context, activates
// it just long enough to build the paint pipeline (shader compile and buffer
// allocation), and restores whatever context was active on entry.
//
// A second call, or an invalid window handle, is an unrecoverable protocol
// violation.
func (a *App[T]) Init(hdc HDC, window HWND, uiFn UIFn[T], state T, ctx ui.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.data != nil {
		return ErrAlreadyInit
	}
	if window == 0 || window == ^HWND(0) {
		return ErrInvalidWindow
	}

	backend, err := a.platform.LoadGL()
	if err != nil {
		return errors.Wrap(err, "resolving GL entry points")
	}

	prev := a.platform.CurrentContext()
	glCtx, err := a.platform.CreateContext(hdc)
	if err != nil {
		return errors.Wrap(err, "creating GL context")
	}
	if err := a.platform.MakeCurrent(hdc, glCtx); err != nil {
		return errors.Wrap(err, "activating GL context")
	}

	painter, err := paint.NewPainter(backend, a.log)
	if err != nil {
		// Leave the host the context it had, even on the failure path.
		if restoreErr := a.platform.MakeCurrent(hdc, prev); restoreErr != nil {
			a.log.Error().Err(restoreErr).Msg("restoring host GL context")
		}
		return errors.Wrap(err, "building paint pipeline")
	}

	a.data = &appData[T]{
		ui:        uiFn,
		glContext: glCtx,
		window:    window,
		painter:   painter,
		collector: a.platform.NewCollector(window),
		ctx:       ctx,
		state:     state,
	}

	if err := a.platform.MakeCurrent(hdc, prev); err != nil {
		return errors.Wrap(err, "restoring host GL context")
	}
	a.log.Info().Uint64("window", uint64(window)).Msg("overlay initialized")
	return nil
}

// Render draws one overlay frame. Call it once per host present call, on the
// host's present thread, with the same device context the host presents on.
// The host's active GL context is saved on entry and restored before return,
// on every path.
func (a *App[T]) Render(hdc HDC) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.data
	if d == nil {
		return ErrNotInit
	}

	prev := a.platform.CurrentContext()
	if err := a.platform.MakeCurrent(hdc, d.glContext); err != nil {
		return errors.Wrap(err, "activating overlay GL context")
	}

	out := d.ctx.Run(d.collector.Collect(), func(c ui.Context) {
		d.ui(c, &d.state)
	})

	if out.Platform.CopiedText != "" {
		if err := a.platform.SetClipboardText(d.window, out.Platform.CopiedText); err != nil {
			a.log.Debug().Err(err).Msg("clipboard forward failed")
		}
	}

	if len(out.Shapes) == 0 {
		// Nothing to draw; skip geometry queries and GPU work entirely.
		return errors.Wrap(a.platform.MakeCurrent(hdc, prev), "restoring host GL context")
	}

	w, h := a.clientRectLocked(d)
	prims := d.ctx.Tessellate(out.Shapes)
	if err := d.painter.Paint(1.0, prims, out.TexturesDelta, w, h); err != nil {
		if restoreErr := a.platform.MakeCurrent(hdc, prev); restoreErr != nil {
			a.log.Error().Err(restoreErr).Msg("restoring host GL context")
		}
		return err
	}

	return errors.Wrap(a.platform.MakeCurrent(hdc, prev), "restoring host GL context")
}

// WndProc feeds one window message to the input collector. On resize signals
// it refreshes the cached client size eagerly. The return value reports
// whether the UI currently wants keyboard or pointer input; the caller uses
// it to decide whether to swallow the message instead of forwarding it to the
// original window procedure.
func (a *App[T]) WndProc(msg uint32, wparam, lparam uintptr) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.data
	if d == nil {
		return false, ErrNotInit
	}

	d.collector.Process(msg, wparam, lparam)

	switch msg {
	case wm.Sizing, wm.Size, wm.ExitSizeMove:
		a.refreshClientRect(d)
	}

	return d.ctx.WantsKeyboardInput() || d.ctx.WantsPointerInput(), nil
}

// LockState runs fn with exclusive access to the caller-supplied state. The
// record lock is held for the duration of fn; keep it short and do not call
// back into the App from inside it.
func (a *App[T]) LockState(fn func(state *T)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.data == nil {
		return ErrNotInit
	}
	fn(&a.data.state)
	return nil
}

// Window returns the target window handle.
func (a *App[T]) Window() (HWND, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.data == nil {
		return 0, ErrNotInit
	}
	return a.data.window, nil
}

// clientRectLocked resolves the cached client size, querying the window once
// lazily. After that the cache only moves on resize notifications; a missed
// notification means one stale frame, which beats a geometry syscall on
// every render.
func (a *App[T]) clientRectLocked(d *appData[T]) (uint32, uint32) {
	if !d.haveClientRect {
		a.refreshClientRect(d)
	}
	return d.clientW, d.clientH
}

func (a *App[T]) refreshClientRect(d *appData[T]) {
	w, h, err := a.platform.ClientRect(d.window)
	if err != nil {
		a.log.Warn().Err(err).Msg("client rect query failed")
		return
	}
	d.clientW, d.clientH = w, h
	d.haveClientRect = true
}
