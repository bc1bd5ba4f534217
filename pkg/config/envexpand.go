package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go templates.
// Only {{.VAR_NAME}} is recognised, so literal $ in origin patterns or
// shell-style values stays untouched.
//
// Examples:
//   - {{.SLACK_CHANNEL}} → value of SLACK_CHANNEL
//   - {{.DASHBOARD_HOST}}:{{.DASHBOARD_PORT}} → both variables expanded
//   - origin: "https://$TENANT.example.com" → preserved literally
//
// Missing variables expand to an empty string. A malformed template returns
// the input unchanged and the YAML parser reports the problem.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if key, value, ok := strings.Cut(env, "="); ok && key != "" {
			envMap[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
