package bot

import "go.uber.org/fx"

// Module provides the conversation core for fx graphs. The Facade and
// Messenger bindings come from the di layer.
var Module = fx.Provide(
	NewSessionStore,
	NewRouter,
)
