// Package inkpad is the composition root for the Inkpad note store.
//
// It connects the core domain (repository, search, editor session) with the
// infrastructure adapters (REST remote backend, file-backed local slot)
// using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Inkpad is a dual-mode note store. When a credential is present it works
// against a remote notes API; on any remote failure it degrades, once and
// irreversibly for the session, to a durable local slot. The user is never
// blocked: the worst case is silent local-only persistence.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Dual-Mode Persistence**: Remote API with automatic local fallback.
//   - **Optimistic Mutation**: In-memory working set updated before confirmation.
//   - **Debounced Autosave**: Single-flight 700ms editor persist window.
//   - **Reactive Views**: Event broker for list/search/selection changes.
//   - **Extensible**: Custom backends plug in via core.RemoteBackend / core.LocalStore.
//
// Usage:
//
//	// Initialize a session with functional options
//	session, err := inkpad.New(dataDir,
//		inkpad.WithCredential(token),
//		inkpad.WithServerURL("https://notes.example.com"),
//		inkpad.WithLogger(logger),
//	)
//
//	// Create and edit a note
//	note, err := session.Create(ctx, "Week1 Notes", "")
//	session.Edit(core.FieldContent, "lecture recap")
package inkpad
