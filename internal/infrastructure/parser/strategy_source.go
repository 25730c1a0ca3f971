package parser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"StartupContent/internal/config"
	"StartupContent/internal/domain"
	"StartupContent/internal/ports"
	"StartupContent/internal/scanner"
)

// StrategySource implements ArticleSource via registered scanner strategies.
type StrategySource struct {
	registry *scanner.Registry
	sites    []config.SiteConfig
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*StrategySource)(nil)

// NewStrategySource wires scanner registry with config-defined sites.
func NewStrategySource(reg *scanner.Registry, sites []config.SiteConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		sites:    sites,
		logger:   log,
	}
}

// FetchDaily iterates over configured sites and executes their scanners.
func (s *StrategySource) FetchDaily(ctx context.Context, day time.Time) ([]domain.SourceArticle, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch daily", "sites", len(s.sites), "day", day.Format("2006-01-02"))

	var aggregated []domain.SourceArticle
	for _, site := range s.sites {
		s.debug("process site", "site", site.Name, "scanner", site.Scanner, "sections", len(site.Sections))
		strategy, err := s.registry.Resolve(site.Scanner)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", site.Name, err)
		}

		req := scanner.Request{
			Day:      day,
			SiteName: site.Name,
			Options:  site.Options,
			Sections: toScannerSections(site.Sections),
		}

		results, err := strategy.Scan(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("scan site %s: %w", site.Name, err)
		}

		s.debug("site produced articles", "site", site.Name, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("strategy source done", "total_articles", len(aggregated))
	return aggregated, nil
}

func toScannerSections(cfg []config.SectionConfig) []scanner.Section {
	sections := make([]scanner.Section, 0, len(cfg))
	for _, sec := range cfg {
		sections = append(sections, scanner.Section{
			Name: sec.Name,
			URL:  sec.URL,
		})
	}
	return sections
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
