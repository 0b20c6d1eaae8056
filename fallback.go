package datefmt

import "sync"

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps explicit fallback chains per locale.
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil {
		return
	}
	key := canonicalLocale(locale)
	if key == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if normalized := canonicalLocale(fallback); normalized != "" && normalized != key {
			chain = append(chain, normalized)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[key] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.chains[canonicalLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}
	return append([]string(nil), chain...)
}

// FallbackChain concatenates the chains of several resolvers in order.
type FallbackChain []FallbackResolver

var _ FallbackResolver = FallbackChain{}

func (c FallbackChain) Resolve(locale string) []string {
	var out []string
	for _, resolver := range c {
		if resolver == nil {
			continue
		}
		out = append(out, resolver.Resolve(locale)...)
	}
	return out
}
