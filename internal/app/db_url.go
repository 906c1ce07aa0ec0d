package app

import (
	"net/url"
	"strings"
)

const (
	paramDisablePreparedBinary = "disable_prepared_binary_result"
	paramApplicationName       = "application_name"
)

type dbURLOptions struct {
	// DisablePreparedBinary asks lib/pq for text results of prepared statements, which poolers
	// in transaction mode require.
	DisablePreparedBinary bool
	// ApplicationName tags sessions in pg_stat_activity.
	ApplicationName string
}

// normalizeDBURL adds the connection parameters in opts unless raw already sets them.
// Both URL and key=value forms are accepted; anything unparsable is returned untouched.
func normalizeDBURL(raw string, opts dbURLOptions) string {
	params := make([][2]string, 0, 2)
	if opts.DisablePreparedBinary {
		params = append(params, [2]string{paramDisablePreparedBinary, "yes"})
	}
	if name := strings.TrimSpace(opts.ApplicationName); name != "" {
		params = append(params, [2]string{paramApplicationName, name})
	}
	if len(params) == 0 {
		return raw
	}

	if parsed, ok := parseDBURL(raw); ok {
		query := parsed.Query()
		changed := false
		for _, p := range params {
			if query.Get(p[0]) == "" {
				query.Set(p[0], p[1])
				changed = true
			}
		}
		if !changed {
			return raw
		}
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	if !strings.Contains(raw, "=") {
		return raw
	}
	out := strings.TrimSpace(raw)
	for _, p := range params {
		if _, ok := dsnValue(out, p[0]); !ok {
			out += " " + p[0] + "=" + quoteDSNValue(p[1])
		}
	}
	return out
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, ok := parseDBURL(trimmed); ok {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}
	name, _ := dsnValue(trimmed, "dbname")
	return name
}

func parseDBURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return nil, false
	}
	return parsed, true
}

func dsnValue(dsn, key string) (string, bool) {
	for _, token := range strings.Fields(dsn) {
		if !strings.HasPrefix(token, key+"=") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(token, key+"="))
		return strings.Trim(value, `"'`), true
	}
	return "", false
}

func quoteDSNValue(value string) string {
	if !strings.ContainsAny(value, ` '\`) {
		return value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
