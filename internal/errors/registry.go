package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime errors (W1xx)
	// ============================================

	"W101": {
		Category: CategoryRuntime,
		Message:  "Effect panicked",
		Detail:   "An effect body panicked while re-running. The panic propagates to the caller of the current drain.",
	},
	"W102": {
		Category: CategoryRuntime,
		Message:  "Owner disposed",
		Detail:   "The owning scope has been disposed. This usually means a signal or effect is being used after its component unmounted.",
	},
	"W103": {
		Category: CategoryRuntime,
		Message:  "Resource fetch failed",
		Detail:   "The resource fetcher returned an error. The error is captured into the resource's error signal.",
	},

	// ============================================
	// Render errors (W2xx)
	// ============================================

	"W201": {
		Category: CategoryRender,
		Message:  "Component render failed",
		Detail:   "A component function panicked while producing its element tree.",
	},
	"W202": {
		Category: CategoryRender,
		Message:  "Mount failed",
		Detail:   "Mounting an element tree into the render target failed.",
	},
	"W203": {
		Category: CategoryRender,
		Message:  "Diff failed",
		Detail:   "Reconciling an element tree against the committed tree failed.",
	},

	// ============================================
	// Scheduler errors (W3xx)
	// ============================================

	"W301": {
		Category: CategoryScheduler,
		Message:  "Task panicked",
		Detail:   "A scheduled task panicked during a drain. The drain continues with the next task.",
	},
	"W302": {
		Category: CategoryScheduler,
		Message:  "Phase callback panicked",
		Detail:   "A layout, paint, or idle callback panicked during its phase.",
	},
}

// Register adds a custom error template. Mostly useful in tests.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
