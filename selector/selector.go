package selector

import (
	"iter"
	"net/http"
	"strings"
	"time"

	"github.com/vitalvas/vroute/mux"
	"github.com/vitalvas/vroute/version"
	"go.uber.org/zap"
)

// DefaultHeader is the request header carrying the requested version date.
const DefaultHeader = "X-Api-Version"

// RouteDataSource produces the route candidates matched for a request.
// *mux.Router implements it.
type RouteDataSource interface {
	RouteData(req *http.Request) *mux.RouteData
}

// Option configures a Selector.
type Option func(*Selector)

// WithHeader sets the name of the version header.
func WithHeader(name string) Option {
	return func(s *Selector) {
		if name != "" {
			s.header = http.CanonicalHeaderKey(name)
		}
	}
}

// WithInvalidHeaderPolicy sets how unparseable version headers are handled.
func WithInvalidHeaderPolicy(p InvalidHeaderPolicy) Option {
	return func(s *Selector) {
		s.policy = p
	}
}

// WithLogger sets the logger used to report rejected requests.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Selector resolves requests to versioned handlers. It holds no per-request
// state and is safe for concurrent use.
type Selector struct {
	index  *version.Index
	routes RouteDataSource
	header string
	policy InvalidHeaderPolicy
	logger *zap.Logger
}

// New returns a selector over the given version index. routes may be nil
// when the selector is only used as a mux.Resolver.
func New(index *version.Index, routes RouteDataSource, opts ...Option) *Selector {
	if index == nil {
		index = version.NewIndex()
	}

	s := &Selector{
		index:  index,
		routes: routes,
		header: DefaultHeader,
		policy: RejectInvalidHeader,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Header returns the canonical name of the version header.
func (s *Selector) Header() string {
	return s.header
}

// SelectHandler resolves req using the route data of the configured
// RouteDataSource.
func (s *Selector) SelectHandler(req *http.Request) (*mux.Candidate, error) {
	var data *mux.RouteData
	if s.routes != nil {
		data = s.routes.RouteData(req)
	}
	return s.Resolve(req, data)
}

// Resolve selects the candidate serving req. It implements mux.Resolver.
// The returned candidate is a copy with Version set to the selected tag.
func (s *Selector) Resolve(req *http.Request, data *mux.RouteData) (*mux.Candidate, error) {
	if data == nil {
		return nil, s.reject(req, ErrNoRouteData)
	}

	chain, err := s.chain(req)
	if err != nil {
		return nil, s.reject(req, ErrVersionNotSupported)
	}

	if len(data.Candidates) == 0 {
		return nil, s.reject(req, ErrNoCandidates)
	}

	// Version recency outranks candidate order.
	for v := range chain {
		for _, c := range data.Candidates {
			if c == nil || !c.MatchesTag(v.Tag) {
				continue
			}
			selected := *c
			selected.Version = v.Tag
			return &selected, nil
		}
	}

	return nil, s.reject(req, ErrVersionNotSupported)
}

// StartDate returns the date requested through the version header. ok is
// false when the header is absent or empty; err is set when it is present
// but not a date.
func (s *Selector) StartDate(req *http.Request) (date time.Time, ok bool, err error) {
	value := strings.TrimSpace(req.Header.Get(s.header))
	if value == "" {
		return time.Time{}, false, nil
	}

	date, err = version.ParseDate(value)
	if err != nil {
		return time.Time{}, true, err
	}

	return date, true, nil
}

// chain returns the versions to try for req, newest first.
func (s *Selector) chain(req *http.Request) (iter.Seq[version.Version], error) {
	date, ok, err := s.StartDate(req)
	switch {
	case !ok:
		return s.index.Chain(), nil
	case err != nil && s.policy == LatestOnInvalidHeader:
		return s.index.Chain(), nil
	case err != nil:
		return s.index.ChainAt(time.Time{})
	default:
		return s.index.ChainAt(date)
	}
}

func (s *Selector) reject(req *http.Request, kind error) error {
	s.logger.Debug("handler selection failed",
		zap.String("path", req.URL.Path),
		zap.String("header", s.header),
		zap.String("requested", req.Header.Get(s.header)),
		zap.Error(kind),
	)
	return notFound(kind)
}
