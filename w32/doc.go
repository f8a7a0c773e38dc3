// Package w32 holds the win32 and wgl bindings the overlay needs: GL context
// exchange, driver entry-point resolution, clipboard text, and the console
// and self-unload helpers an injected library wants.
package w32
