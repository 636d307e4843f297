// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/algoviz/builder"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ALGOVIZ_"

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// loadEnv overlays ALGOVIZ_* variables. A variable that is set but cannot be
// parsed is an error rather than silently ignored.
func (c *Config) loadEnv(lookup lookupFunc) error {
	env := envReader{lookup: lookup}

	env.size("GRAPH_SIZE", &c.Graph.Size)
	env.integer64("GRAPH_SEED", &c.Graph.Seed)
	env.str("VARIANT", &c.Animation.Variant)
	env.integer("SOURCE", &c.Animation.Source)
	env.integer("TARGET", &c.Animation.Target)
	env.duration("STEP_DELAY", &c.Animation.StepDelay)
	env.boolean("AUTO_START", &c.Animation.AutoStart)
	env.boolean("RENDER_ENABLED", &c.Render.Enabled)
	env.duration("RENDER_INTERVAL", &c.Render.Interval)
	env.str("LOG_LEVEL", &c.Log.Level)
	env.str("LOG_FORMAT", &c.Log.Format)
	env.boolean("METRICS_ENABLED", &c.Metrics.Enabled)
	env.boolean("SERVER_ENABLED", &c.Server.Enabled)
	env.str("SERVER_ADDR", &c.Server.Addr)

	return env.err
}

// envReader records the first parse failure and skips the rest.
type envReader struct {
	lookup lookupFunc
	err    error
}

func (r *envReader) get(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	return r.lookup(EnvPrefix + key)
}

func (r *envReader) fail(key, val string, err error) {
	r.err = fmt.Errorf("%w: %s%s=%q: %v", ErrEnv, EnvPrefix, key, val, err)
}

func (r *envReader) str(key string, dst *string) {
	if v, ok := r.get(key); ok {
		*dst = v
	}
}

func (r *envReader) integer(key string, dst *int) {
	if v, ok := r.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (r *envReader) integer64(key string, dst *int64) {
	if v, ok := r.get(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (r *envReader) boolean(key string, dst *bool) {
	if v, ok := r.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (r *envReader) duration(key string, dst *time.Duration) {
	if v, ok := r.get(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = d
	}
}

func (r *envReader) size(key string, dst *builder.Size) {
	if v, ok := r.get(key); ok {
		s, err := builder.ParseSize(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = s
	}
}
