package reconcile

import "time"

// Config holds review presentation and caching settings.
type Config struct {
	// VisibleChanges is the number of changed rows shown before collapsing.
	VisibleChanges int `mapstructure:"visible_changes" default:"3"`
	// ExpandedByDefault opens both the changed and unchanged sections.
	ExpandedByDefault bool `mapstructure:"expanded_by_default" default:"false"`
	// CacheTTLSeconds bounds how long a loaded snapshot is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// Policy converts the configuration into a presentation policy.
func (c Config) Policy() Policy {
	p := Policy{
		VisibleChanges:    c.VisibleChanges,
		ExpandedByDefault: c.ExpandedByDefault,
	}
	if p.VisibleChanges <= 0 {
		p.VisibleChanges = DefaultVisibleChanges
	}
	return p
}

// CacheTTL returns the snapshot cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
