// Package shell emulates a persistent interactive shell session on top of
// stateless single-shot command executions.
//
// Each submitted line runs in a brand-new process with no memory of prior
// state. The engine keeps the illusion of continuity: a virtual working
// directory verified against the real filesystem, history recall, alias
// expansion, implicit bare-word navigation and a branch label. All paths are
// resolved by asking the shell itself to perform the change and report the
// canonical result, never by client-side string arithmetic.
package shell
