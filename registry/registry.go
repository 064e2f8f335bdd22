package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agext/levenshtein"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-wordwrap"

	"github.com/katalvlaran/lvflow/broadcast"
	"github.com/katalvlaran/lvflow/tree"
)

// docWidth is the column at which Doc wraps overload descriptions.
const docWidth = 72

// Registry holds every overload known to a graph, grouped by name.
// Overloads of one name keep registration order, which is also the order in
// which Resolve tries them.
type Registry struct {
	mu  sync.RWMutex
	ops map[string][]Overload
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{ops: make(map[string][]Overload)}
}

// Register adds o. It fails with ErrInvalidOverload if o is malformed and with
// ErrDuplicateOverload if an overload with the same signature exists.
func (r *Registry) Register(o Overload) error {
	if err := validate(o); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, have := range r.ops[o.Name] {
		if have.sameSignature(o) {
			return fmt.Errorf("%w: %s", ErrDuplicateOverload, o.Signature())
		}
	}
	o.Inputs = append([]Param(nil), o.Inputs...)
	o.Outputs = append([]Output(nil), o.Outputs...)
	r.ops[o.Name] = append(r.ops[o.Name], o)

	return nil
}

// MustRegister registers every overload and panics on the first error.
// It is meant for static tables installed at startup.
func (r *Registry) MustRegister(os ...Overload) {
	for _, o := range os {
		if err := r.Register(o); err != nil {
			panic(err)
		}
	}
}

// validate collects every problem of o into one ErrInvalidOverload.
func validate(o Overload) error {
	var merr *multierror.Error
	if o.Name == "" {
		merr = multierror.Append(merr, fmt.Errorf("empty name"))
	}
	if o.Kernel == nil {
		merr = multierror.Append(merr, fmt.Errorf("nil kernel"))
	}
	if len(o.Outputs) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("no outputs"))
	}
	for i, p := range o.Inputs {
		if !p.Kind.Valid() {
			merr = multierror.Append(merr, fmt.Errorf("input %d (%s) has kind %s", i, p.Name, p.Kind))
		}
		if p.Depth < broadcast.Whole {
			merr = multierror.Append(merr, fmt.Errorf("input %d (%s) has depth %d", i, p.Name, p.Depth))
		}
	}
	for i, out := range o.Outputs {
		if !out.Kind.Valid() {
			merr = multierror.Append(merr, fmt.Errorf("output %d (%s) has kind %s", i, out.Name, out.Kind))
		}
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = inlineFormat

	return fmt.Errorf("%w: %q: %w", ErrInvalidOverload, o.Name, merr)
}

// Resolve returns the overload of name whose input kinds equal kinds.
// outputs is the requested output count; 0 accepts any.
//
// On failure the error wraps ErrNoMatchingOverload and lists every candidate
// together with the reason it was rejected.
func (r *Registry) Resolve(name string, kinds []tree.Kind, outputs int) (Overload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cands, ok := r.ops[name]
	if !ok {
		if s := r.suggest(name); s != "" {
			return Overload{}, fmt.Errorf("%w: unknown operation %q (did you mean %q?)", ErrNoMatchingOverload, name, s)
		}

		return Overload{}, fmt.Errorf("%w: unknown operation %q", ErrNoMatchingOverload, name)
	}

	var merr *multierror.Error
	for _, o := range cands {
		reason := o.accepts(kinds, outputs)
		if reason == nil {
			return o, nil
		}
		merr = multierror.Append(merr, fmt.Errorf("%s %w", o.Signature(), reason))
	}
	merr.ErrorFormat = inlineFormat

	return Overload{}, fmt.Errorf("%w: %s(%s): %w", ErrNoMatchingOverload, name, kindList(kinds), merr)
}

// suggest returns the registered name closest to name, or "" if none is
// within a small edit distance. Callers hold r.mu.
func (r *Registry) suggest(name string) string {
	best, bestDist := "", 3
	for _, have := range r.sortedNames() {
		if d := levenshtein.Distance(name, have, nil); d < bestDist {
			best, bestDist = have, d
		}
	}

	return best
}

// Has reports whether any overload is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ops[name]

	return ok
}

// Names returns every registered operation name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.ops))
	for n := range r.ops {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Overloads returns a copy of the overloads registered under name.
func (r *Registry) Overloads(name string) []Overload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Overload(nil), r.ops[name]...)
}

// Doc renders the documentation of every overload of name: its signature,
// its description wrapped at 72 columns, then one line per documented param.
// Unknown names yield "".
func (r *Registry) Doc(name string) string {
	var sb strings.Builder
	for i, o := range r.Overloads(name) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(o.Signature())
		sb.WriteByte('\n')
		if o.Doc != "" {
			writeIndented(&sb, "    ", wordwrap.WrapString(o.Doc, docWidth))
		}
		for _, p := range o.Inputs {
			if p.Doc != "" {
				writeIndented(&sb, "    ", fmt.Sprintf("%s: %s", p.Name, p.Doc))
			}
		}
		for _, out := range o.Outputs {
			if out.Doc != "" {
				writeIndented(&sb, "    ", fmt.Sprintf("-> %s: %s", out.Name, out.Doc))
			}
		}
	}

	return sb.String()
}

func writeIndented(sb *strings.Builder, indent, text string) {
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// inlineFormat renders a multierror on one line: "a; b; c".
func inlineFormat(es []error) string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}
