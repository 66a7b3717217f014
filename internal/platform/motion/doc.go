// Package motion models the page's animation contracts as small state
// machines.
//
// A Spec declares where an element starts, where it ends, what starts the
// transition, and whether it loops. A Reveal is the runtime projection of one
// Spec for one element: it is mounted into a Timeline, sampled once per frame,
// and released on unmount. Viewport-gated reveals latch on the first entry and
// fail open when no viewport observer can be acquired.
//
// The same specs are projected to CSS (see Stylesheet) so that the browser
// rendition and the Go model cannot drift apart.
package motion
