package motion

import (
	"fmt"
	"strings"
	"time"
)

// RevealedClass marks a viewport-gated element whose transition has fired.
const RevealedClass = "is-revealed"

// AttrName is the data attribute that binds an element to its named spec.
const AttrName = "data-motion"

// AttrTrigger carries the Trigger for the browser driver.
const AttrTrigger = "data-motion-trigger"

// Named binds a spec to the name used in markup and CSS.
type Named struct {
	Name string
	Spec Spec
}

// Selector returns the attribute selector for name.
func Selector(name string) string {
	return fmt.Sprintf(`[%s="%s"]`, AttrName, name)
}

// Declarations renders s as CSS declarations. Transform components are
// combined into one transform declaration.
func Declarations(s State) string {
	var parts []string
	var transforms []string
	for _, p := range s.Properties() {
		v := s[p]
		switch p {
		case Opacity:
			parts = append(parts, "opacity: "+formatFloat(v))
		case TranslateY:
			transforms = append(transforms, "translateY("+formatFloat(v)+"px)")
		case Scale:
			transforms = append(transforms, "scale("+formatFloat(v)+")")
		}
	}
	if len(transforms) > 0 {
		parts = append(parts, "transform: "+strings.Join(transforms, " "))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

// Keyframes renders the CSS rules for one named spec.
func Keyframes(name string, spec Spec) string {
	var b strings.Builder
	sel := Selector(name)
	duration := cssDuration(spec.Duration)
	timing := spec.Easing.CSS()

	switch {
	case spec.Repeat == RepeatInfinite:
		fmt.Fprintf(&b, "@keyframes %s {\n", name)
		fmt.Fprintf(&b, "  0%% { %s }\n", Declarations(spec.Initial))
		fmt.Fprintf(&b, "  50%% { %s }\n", Declarations(spec.Target))
		fmt.Fprintf(&b, "  100%% { %s }\n", Declarations(spec.Initial))
		b.WriteString("}\n")
		fmt.Fprintf(&b, "%s { animation: %s %s %s infinite; }\n", sel, name, duration, timing)
	case spec.Trigger == OnMount:
		fmt.Fprintf(&b, "@keyframes %s {\n", name)
		fmt.Fprintf(&b, "  from { %s }\n", Declarations(spec.Initial))
		fmt.Fprintf(&b, "  to { %s }\n", Declarations(spec.Target))
		b.WriteString("}\n")
		fmt.Fprintf(&b, "%s { animation: %s %s %s both; }\n", sel, name, duration, timing)
	default:
		transitions := make([]string, 0, 2)
		props := spec.Initial.Properties()
		hasTransform := false
		for _, p := range props {
			if p == Opacity {
				transitions = append(transitions, fmt.Sprintf("opacity %s %s", duration, timing))
				continue
			}
			if !hasTransform {
				hasTransform = true
				transitions = append(transitions, fmt.Sprintf("transform %s %s", duration, timing))
			}
		}
		fmt.Fprintf(&b, "%s { %s transition: %s; }\n", sel, Declarations(spec.Initial), strings.Join(transitions, ", "))
		fmt.Fprintf(&b, "%s.%s { %s }\n", sel, RevealedClass, Declarations(spec.Target))
	}
	return b.String()
}

// Stylesheet renders every named spec plus the reduced-motion override.
func Stylesheet(named ...Named) string {
	var b strings.Builder
	for _, n := range named {
		b.WriteString(Keyframes(n.Name, n.Spec))
	}
	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	fmt.Fprintf(&b, "  [%s] { animation: none !important; transition: none !important; }\n", AttrName)
	b.WriteString("}\n")
	return b.String()
}

// NoScriptStylesheet forces viewport-gated elements to their target state
// when the browser driver cannot run.
func NoScriptStylesheet(named ...Named) string {
	var b strings.Builder
	for _, n := range named {
		if n.Spec.Trigger != OnFirstViewportEntry {
			continue
		}
		decl := strings.ReplaceAll(Declarations(n.Spec.Target), ";", " !important;")
		fmt.Fprintf(&b, "%s { %s }\n", Selector(n.Name), decl)
	}
	return b.String()
}

func cssDuration(d time.Duration) string {
	if d%time.Second == 0 || d >= time.Second {
		return formatFloat(d.Seconds()) + "s"
	}
	return formatFloat(float64(d)/float64(time.Millisecond)) + "ms"
}
