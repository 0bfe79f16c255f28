package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every knob the dashboard has. Default returns the report's
// own literals; a YAML file passed to Load overrides individual fields.
type Config struct {
	DataFile string `yaml:"data_file"`
	Output   string `yaml:"output"`
	Listen   string `yaml:"listen"`

	Title   string   `yaml:"title"`
	Years   []string `yaml:"years"`
	PieYear string   `yaml:"pie_year"`

	Groups     Groups     `yaml:"groups"`
	Indicators Indicators `yaml:"indicators"`
	Captions   Captions   `yaml:"captions"`
}

// Groups are the four fixed country groupings the charts select over.
type Groups struct {
	Arab     []string `yaml:"arab"`
	European []string `yaml:"european"`
	Asian    []string `yaml:"asian"`
	American []string `yaml:"american"`
}

// Indicators are the Series names used as row selectors.
type Indicators struct {
	Exports     string `yaml:"exports"`
	Imports     string `yaml:"imports"`
	ArabExports string `yaml:"arab_exports"`
	ArabImports string `yaml:"arab_imports"`
}

// Captions are the static text blocks overlaid on the dashboard.
type Captions struct {
	Attribution string `yaml:"attribution"`
	Narrative   string `yaml:"narrative"`
}

const narrative = `Objective of the Plots:

The Merchandise value of goods exported by American nations grew gradually, rising from 70 billion in 2010 to 458 billion in 2013. Canada is a major exporter of goods, with 387 billion in 2010 and 458 billion in 2013.

Asian countries are gradually increasing their imports of goods across all regions, but China is the region's leading importer: in 2010, the value of its imports was $1369 billion, but in 2013, it jumped to $1950 billion.

In 2015, the percentage of goods exported and imported by the Arab countries' economies had significant consequences. Saudi Arabia exports 67.1% of its commodities, but only imports 33.4% of them. Kuwait is the second-largest Arab exporter, accounting for 10.4% of global goods.

In the Arab world's economy in 2015, 50.7% of imports were sourced from Qatar, Libya, and Iraq.`

// Default is the fixed report configuration. MERCHDASH_DATA and
// MERCHDASH_LISTEN override the file path and listen address when set.
func Default() *Config {
	cfg := &Config{
		DataFile: "MerchandiseData.csv",
		Output:   "merchdash.html",
		Listen:   ":8080",
		Title:    "Growth of Merchandise Trade in the Regions 2010-2015",
		Years:    []string{"2010", "2011", "2012", "2013"},
		PieYear:  "2015",
		Groups: Groups{
			Arab:     []string{"Saudi Arabia", "Bahrain", "Iraq", "Qatar", "Libya", "Kuwait"},
			European: []string{"France", "Germany", "Italy", "Poland", "Spain"},
			Asian:    []string{"China", "India", "Japan", "Malaysia", "Singapore"},
			American: []string{"Colombia", "Brazil", "Canada", "Chile", "Argentina", "Mexico"},
		},
		Indicators: Indicators{
			Exports:     "Merchandise exports (current US$)",
			Imports:     "Merchandise imports (current US$)",
			ArabExports: "Merchandise exports to economies in the Arab World (% of total merchandise exports)",
			ArabImports: "Merchandise imports from economies in the Arab World (% of total merchandise imports)",
		},
		Captions: Captions{
			Attribution: "Data Source: World Bank\nWorld Development Indicators",
			Narrative:   narrative,
		},
	}
	if v := os.Getenv("MERCHDASH_DATA"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("MERCHDASH_LISTEN"); v != "" {
		cfg.Listen = v
	}
	return cfg
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path means defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
