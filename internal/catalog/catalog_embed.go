package catalog

import (
	_ "embed"
)

//go:embed data/cities.yaml
var citiesYAML []byte
