package resolve

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultMaxResultLength bounds a single reference expansion as a
// defense against runaway CONF recursion producing unbounded strings.
// 32767 matches the conventional Windows path length ceiling and is a
// reasonable default for path-shaped expansions.
const DefaultMaxResultLength = 32767

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithBuiltinValues supplies the concrete BUILTIN domain values (process
// and host identifying strings). Names not present resolve as unknown.
func WithBuiltinValues(values map[string]string) Option {
	return func(r *Resolver) {
		r.builtin = values
	}
}

// WithKnownFolderLookup overrides the FOLDERID domain's lookup function.
// Defaults to DefaultKnownFolders.
func WithKnownFolderLookup(lookup KnownFolderLookup) Option {
	return func(r *Resolver) {
		r.knownFolders = lookup
	}
}

// WithMaxResultLength overrides DefaultMaxResultLength.
func WithMaxResultLength(n int) Option {
	return func(r *Resolver) {
		r.maxResultLength = n
	}
}

// Resolver expands "%DOMAIN::NAME%" references, memoizing results and
// detecting resolution cycles. A Resolver is safe for concurrent use;
// the intended deployment resolves references single-threaded during
// configuration load and then stops mutating the resolver entirely, but
// the guarding mutex makes concurrent use safe regardless.
type Resolver struct {
	mu sync.Mutex

	cache      map[string]string
	inProgress map[string]struct{}

	definitions map[string]string

	builtin      map[string]string
	knownFolders KnownFolderLookup

	maxResultLength int
}

// New constructs a Resolver with the four built-in domains registered.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		cache:           make(map[string]string),
		inProgress:      make(map[string]struct{}),
		definitions:     make(map[string]string),
		knownFolders:    DefaultKnownFolders,
		maxResultLength: DefaultMaxResultLength,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetDefinitions replaces the CONF domain's backing definitions (the
// configuration document's "Definitions" section). It does not clear
// the resolution cache; callers that reload
// definitions after having resolved references should construct a fresh
// Resolver instead; the clean-slate rule is as important as the cache
// itself, since a stale cached expansion of an old definition would
// otherwise silently outlive the definition it came from.
func (r *Resolver) SetDefinitions(defs map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make(map[string]string, len(defs))
	for k, v := range defs {
		cp[k] = v
	}

	r.definitions = cp
}

func (r *Resolver) domains() map[string]domainFunc {
	return map[string]domainFunc{
		DomainBuiltin:  builtinDomain(r.builtin),
		DomainEnv:      envDomain(),
		DomainFolderID: folderIDDomain(r.knownFolders),
		DomainConf:     confDomain(r.definitions, r.resolveAllLocked),
	}
}

// ResolveSingle expands one reference of the form "[DOMAIN::]NAME". If
// domain is omitted, DefaultDomain (ENV) is used. Successful results are
// cached keyed on the original, unparsed text, so repeated lookups of
// the same reference text are O(1).
func (r *Resolver) ResolveSingle(text string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolveSingleLocked(text)
}

func (r *Resolver) resolveSingleLocked(text string) (string, error) {
	if cached, ok := r.cache[text]; ok {
		return cached, nil
	}

	domain, name, err := splitReference(text)
	if err != nil {
		return "", err
	}

	fqName := domain + "::" + name
	if _, cycling := r.inProgress[fqName]; cycling {
		return "", fmt.Errorf("%w: %s", ErrCycleDetected, fqName)
	}

	fn, ok := r.domains()[domain]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownDomain, domain)
	}

	r.inProgress[fqName] = struct{}{}
	value, err := fn(name)
	delete(r.inProgress, fqName)

	if err != nil {
		return "", err
	}

	if len(value) > r.maxResultLength {
		return "", fmt.Errorf("%w: %s (%d > %d)", ErrResultTooLong, fqName, len(value), r.maxResultLength)
	}

	r.cache[text] = value

	return value, nil
}

// EscapeOptions controls how ResolveAll escapes characters that occur
// within a reference's expansion (never within literal portions of the
// input text).
type EscapeOptions struct {
	// Chars lists the characters that must be escaped when they occur in
	// an expanded reference. Escaping is inactive when Chars is empty.
	Chars string
	// Start is emitted immediately before an escaped character. Defaults
	// to "\\" when both Start and End are unset and Chars is non-empty.
	Start string
	// End is emitted immediately after an escaped character. Defaults to
	// "" when unset.
	End string
}

// ResolveAll splits text on the literal delimiter "%" and expands every
// odd-indexed part as a reference, leaving even-indexed parts as
// literal text. An empty odd-indexed part (i.e. "%%" in the input)
// emits a single literal "%". The input must split into an odd number
// of parts; an even count means the delimiters are unmatched and
// resolution fails.
func (r *Resolver) ResolveAll(text string, escape ...EscapeOptions) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var opts EscapeOptions
	if len(escape) > 0 {
		opts = escape[0]
	}

	return r.resolveAllLockedWithEscape(text, opts)
}

// resolveAllLocked adapts resolveAllLockedWithEscape to the domainFunc
// shape the CONF domain needs (no escaping applied to nested
// definitions, since escaping is a presentation concern for the
// top-level caller, not for composing definitions internally).
func (r *Resolver) resolveAllLocked(text string) (string, error) {
	return r.resolveAllLockedWithEscape(text, EscapeOptions{})
}

func (r *Resolver) resolveAllLockedWithEscape(text string, opts EscapeOptions) (string, error) {
	parts := strings.Split(text, "%")
	if len(parts)%2 == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnmatchedDelimiters, text)
	}

	escapeStart := opts.Start
	escapeEnd := opts.End
	if opts.Chars != "" && escapeStart == "" && escapeEnd == "" {
		escapeStart = `\`
	}

	var b strings.Builder
	for i, part := range parts {
		if i%2 == 0 {
			b.WriteString(part)
			continue
		}

		if part == "" {
			b.WriteByte('%')
			continue
		}

		expansion, err := r.resolveSingleLocked(part)
		if err != nil {
			return "", err
		}

		if opts.Chars == "" {
			b.WriteString(expansion)
			continue
		}

		for _, c := range expansion {
			if strings.ContainsRune(opts.Chars, c) {
				b.WriteString(escapeStart)
				b.WriteRune(c)
				b.WriteString(escapeEnd)
				continue
			}

			b.WriteRune(c)
		}
	}

	return b.String(), nil
}

// splitReference parses "[DOMAIN::]NAME" into its domain and name parts.
// More than one "::" separator is a parse error.
func splitReference(text string) (domain, name string, err error) {
	idx := strings.Index(text, "::")
	if idx < 0 {
		return DefaultDomain, text, nil
	}

	domain = text[:idx]
	rest := text[idx+2:]
	if strings.Contains(rest, "::") {
		return "", "", fmt.Errorf("%w: %q", ErrUnparseableReference, text)
	}

	return domain, rest, nil
}
