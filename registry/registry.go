package registry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pathwinder/core/fsquery"
	"github.com/pathwinder/core/internal/strs"
	"github.com/pathwinder/core/ptree"
	"github.com/pathwinder/core/resolve"
	"github.com/pathwinder/core/rules"
)

// Registry accumulates filesystem rules during configuration load. It
// starts in the Building state, where rules may be added, and
// transitions exactly once to Finalized via Finalize, which validates
// the accumulated rule set's cross-rule invariants and yields an
// immutable FinalizedRegistry for the director package to wrap.
type Registry struct {
	mu sync.Mutex

	resolver  *resolve.Resolver
	fsQuerier fsquery.Querier

	finalized bool

	rulesByName        map[string]rules.FilesystemRule
	originDirsLower    map[string]struct{}
	targetDirsLower    map[string]struct{}
	containersByOrigin map[string]*rules.RelatedFilesystemRuleContainer
	tree               *ptree.Tree[*rules.RelatedFilesystemRuleContainer]
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithResolver supplies the reference resolver used to expand
// %DOMAIN::NAME% references in origin/target directories and file
// patterns before they are validated. Without one, strings are used
// literally.
func WithResolver(r *resolve.Resolver) Option {
	return func(reg *Registry) { reg.resolver = r }
}

// WithFileSystemQuerier supplies the real-filesystem query
// implementation used during Finalize. Defaults to fsquery.OSQuerier.
func WithFileSystemQuerier(q fsquery.Querier) Option {
	return func(reg *Registry) { reg.fsQuerier = q }
}

// New constructs an empty Registry in the Building state.
func New(opts ...Option) *Registry {
	reg := &Registry{
		fsQuerier:          fsquery.OSQuerier{},
		rulesByName:        make(map[string]rules.FilesystemRule),
		originDirsLower:    make(map[string]struct{}),
		targetDirsLower:    make(map[string]struct{}),
		containersByOrigin: make(map[string]*rules.RelatedFilesystemRuleContainer),
		tree:               ptree.New[*rules.RelatedFilesystemRuleContainer](),
	}

	for _, opt := range opts {
		opt(reg)
	}

	return reg
}

func (r *Registry) resolveString(s string) (string, error) {
	if r.resolver == nil {
		return s, nil
	}

	expanded, err := r.resolver.ResolveAll(s)
	if err != nil {
		return "", err
	}

	return resolve.CanonicalizeRelative(expanded)
}

// AddRule validates and stores a new FilesystemRule. Origin and target
// strings (and each file pattern) are first passed through the
// configured resolver, if any, so config-time references expand before
// validation. Per-rule syntactic validity is enforced immediately; the
// full set of cross-rule invariants is checked later, once, at
// Finalize.
func (r *Registry) AddRule(name, origin, target string, patterns []string, mode rules.RedirectMode) (rules.FilesystemRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finalized {
		return rules.FilesystemRule{}, ErrAlreadyFinalized
	}

	if _, exists := r.rulesByName[name]; exists {
		return rules.FilesystemRule{}, fmt.Errorf("%w: %q", ErrDuplicateRuleName, name)
	}

	resolvedOrigin, err := r.resolveString(origin)
	if err != nil {
		return rules.FilesystemRule{}, fmt.Errorf("resolving origin directory for rule %q: %w", name, err)
	}

	resolvedTarget, err := r.resolveString(target)
	if err != nil {
		return rules.FilesystemRule{}, fmt.Errorf("resolving target directory for rule %q: %w", name, err)
	}

	resolvedPatterns := make([]string, len(patterns))
	for i, p := range patterns {
		rp, err := r.resolveString(p)
		if err != nil {
			return rules.FilesystemRule{}, fmt.Errorf("resolving file pattern for rule %q: %w", name, err)
		}

		resolvedPatterns[i] = rp
	}

	rule, err := rules.NewFilesystemRule(name, resolvedOrigin, resolvedTarget, resolvedPatterns, mode)
	if err != nil {
		return rules.FilesystemRule{}, fmt.Errorf("rule %q: %w", name, err)
	}

	container, ok := r.containersByOrigin[strs.ToLowerASCII(rule.OriginDirectory())]
	if !ok {
		container = rules.NewRelatedFilesystemRuleContainer()
		r.containersByOrigin[strs.ToLowerASCII(rule.OriginDirectory())] = container
		r.tree.Update(strs.ToLowerASCII(rule.OriginDirectory()), container)
	}

	if err := container.Insert(rule); err != nil {
		return rules.FilesystemRule{}, fmt.Errorf("rule %q: %w", name, err)
	}

	r.rulesByName[name] = rule
	r.originDirsLower[strs.ToLowerASCII(rule.OriginDirectory())] = struct{}{}
	r.targetDirsLower[strs.ToLowerASCII(rule.TargetDirectory())] = struct{}{}

	return rule, nil
}

// HasDirectory reports whether path is used as an origin or target
// directory by any registered rule.
func (r *Registry) HasDirectory(path string) bool {
	return r.HasOriginDirectory(path) || r.HasTargetDirectory(path)
}

// HasOriginDirectory reports whether path is used as an origin
// directory by any registered rule.
func (r *Registry) HasOriginDirectory(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.originDirsLower[strs.ToLowerASCII(path)]
	return ok
}

// HasTargetDirectory reports whether path is used as a target
// directory by any registered rule.
func (r *Registry) HasTargetDirectory(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.targetDirsLower[strs.ToLowerASCII(path)]
	return ok
}

// Finalize checks the global cross-rule invariants and, on success,
// transitions the Registry to Finalized and returns an immutable
// FinalizedRegistry. Calling Finalize twice returns ErrAlreadyFinalized.
func (r *Registry) Finalize() (*FinalizedRegistry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finalized {
		return nil, ErrAlreadyFinalized
	}

	if err := r.checkInvariantsLocked(); err != nil {
		return nil, err
	}

	r.finalized = true

	return &FinalizedRegistry{
		rulesByName: r.rulesByName,
		tree:        r.tree,
		generation:  uuid.NewString(),
	}, nil
}

func (r *Registry) checkInvariantsLocked() error {
	for _, rule := range r.rulesByName {
		if r.fsQuerier.Exists(rule.OriginDirectory()) && !r.fsQuerier.IsDirectory(rule.OriginDirectory()) {
			return fmt.Errorf("%w: %q (rule %q)", ErrOriginNotDirectory, rule.OriginDirectory(), rule.Name())
		}

		// A volume root ("C:\") is the floor of every hierarchy and counts
		// as an existing parent.
		parent := strs.ParentOf(rule.OriginDirectory())
		_, parentIsOrigin := r.originDirsLower[strs.ToLowerASCII(parent)]
		if !strs.IsVolumeRoot(parent) && !r.fsQuerier.IsDirectory(parent) && !parentIsOrigin {
			return fmt.Errorf("%w: %q (rule %q)", ErrMissingOriginParent, parent, rule.Name())
		}
	}

	for _, ruleA := range r.rulesByName {
		for _, ruleB := range r.rulesByName {
			if ruleA.Name() == ruleB.Name() {
				continue
			}

			if strs.EqualFold(ruleA.OriginDirectory(), ruleB.TargetDirectory()) {
				return fmt.Errorf("%w: rule %q origin equals rule %q target", ErrTargetCollision, ruleA.Name(), ruleB.Name())
			}

			if strs.EqualFold(ruleA.OriginDirectory(), ruleB.OriginDirectory()) {
				continue
			}

			if rules.CompareDirectories(ruleB.OriginDirectory(), ruleA.TargetDirectory()) != rules.Unrelated {
				return fmt.Errorf("%w: rule %q target collides with rule %q origin", ErrTargetCollision, ruleA.Name(), ruleB.Name())
			}

			if rules.CompareDirectories(ruleB.TargetDirectory(), ruleA.TargetDirectory()) != rules.Unrelated {
				return fmt.Errorf("%w: rule %q target collides with rule %q target", ErrTargetCollision, ruleA.Name(), ruleB.Name())
			}
		}
	}

	return nil
}

// FinalizedRegistry is the immutable, validated result of
// Registry.Finalize. The director package wraps it to answer queries;
// it holds no mutable state and requires no synchronization to read.
type FinalizedRegistry struct {
	rulesByName map[string]rules.FilesystemRule
	tree        *ptree.Tree[*rules.RelatedFilesystemRuleContainer]
	generation  string
}

// RuleByName returns the rule registered under name, if any.
func (f *FinalizedRegistry) RuleByName(name string) (rules.FilesystemRule, bool) {
	rule, ok := f.rulesByName[name]
	return rule, ok
}

// Tree returns the prefix tree of rule containers keyed by origin
// directory.
func (f *FinalizedRegistry) Tree() *ptree.Tree[*rules.RelatedFilesystemRuleContainer] {
	return f.tree
}

// AllRules returns every registered rule in unspecified order.
func (f *FinalizedRegistry) AllRules() []rules.FilesystemRule {
	all := make([]rules.FilesystemRule, 0, len(f.rulesByName))
	for _, rule := range f.rulesByName {
		all = append(all, rule)
	}

	return all
}

// GenerationID returns a unique identifier stamped at Finalize time,
// useful for correlating log lines across the lifetime of one built
// director.
func (f *FinalizedRegistry) GenerationID() string {
	return f.generation
}
