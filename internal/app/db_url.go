package app

import (
	"net/url"
	"strings"
)

// connectionURL applies the optional lib/pq workaround for servers that
// mishandle prepared binary results. Unparseable DSNs pass through
// untouched; the driver reports its own error on connect.
func connectionURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u == nil {
		return raw
	}

	values := u.Query()
	if values.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	values.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = values.Encode()

	return u.String()
}

// databaseName extracts the database name for span attributes. Both URL
// DSNs (postgres://host/name) and key=value DSNs (dbname=name) appear in
// deployments, so try the URL form first and fall back to scanning tokens.
func databaseName(raw string) string {
	dsn := strings.TrimSpace(raw)

	if u, err := url.Parse(dsn); err == nil && u != nil && u.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(u.Path, "/")); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		value, ok := strings.CutPrefix(field, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}

	return ""
}
