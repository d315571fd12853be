package envfile

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Additional declaration sources beyond dotenv files. These fold deployment
// manifests into the declared-name set; values are discarded, only the names
// matter for reconciliation.

// ParseCompose extracts the environment variable names declared by the
// services of a docker-compose file. Both the map form and the KEY=value
// list form of the environment section are supported. A missing or invalid
// file yields an empty set.
func ParseCompose(path string) map[string]bool {
	vars := make(map[string]bool)

	data, err := os.ReadFile(path)
	if err != nil {
		return vars
	}

	var compose struct {
		Services map[string]struct {
			Environment yaml.Node `yaml:"environment"`
		} `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return vars
	}

	for _, service := range compose.Services {
		switch service.Environment.Kind {
		case yaml.MappingNode:
			var env map[string]interface{}
			if err := service.Environment.Decode(&env); err != nil {
				continue
			}
			for k := range env {
				addName(vars, k)
			}
		case yaml.SequenceNode:
			var env []string
			if err := service.Environment.Decode(&env); err != nil {
				continue
			}
			for _, item := range env {
				name, _, _ := strings.Cut(item, "=")
				addName(vars, name)
			}
		}
	}
	return vars
}

// ParseK8s extracts data keys from Kubernetes ConfigMap and Secret
// manifests. Multi-document files are handled; non-matching documents are
// skipped. A missing or invalid file yields an empty set.
func ParseK8s(path string) map[string]bool {
	vars := make(map[string]bool)

	file, err := os.Open(path)
	if err != nil {
		return vars
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	for {
		var obj struct {
			Kind string                 `yaml:"kind"`
			Data map[string]interface{} `yaml:"data"`
		}
		if err := decoder.Decode(&obj); err != nil {
			break
		}
		if obj.Kind != "ConfigMap" && obj.Kind != "Secret" {
			continue
		}
		for k := range obj.Data {
			addName(vars, k)
		}
	}
	return vars
}

func addName(vars map[string]bool, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	vars[strings.ToUpper(name)] = true
}

// Merge folds any number of name sets into one.
func Merge(sets ...map[string]bool) map[string]bool {
	merged := make(map[string]bool)
	for _, set := range sets {
		for k := range set {
			merged[k] = true
		}
	}
	return merged
}
