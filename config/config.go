package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

/*
Config is the configuration for the application.

Contains the location of the source tables, the output layout and the log level.
*/
type Config struct {
	Data     DataConfig   `json:"data"`
	Output   OutputConfig `json:"output"`
	LogLevel string       `json:"log_level"`
}

/*
DataConfig describes where the per-state, per-category tables live.
*/
type DataConfig struct {
	// directory holding one sub-directory per category
	Root string `json:"root"`
	// file name prefix, e.g. ALLCD
	Prefix string `json:"prefix"`
	// postal codes, processed in this order
	States []string `json:"states"`
	// categories, processed in this order for every state
	Categories []Category `json:"categories"`
}

/*
OutputConfig is the configuration for the ranking output.
*/
type OutputConfig struct {
	// directory the ranked tables are written to
	Dir string `json:"dir"`
	// number of closest districts displayed per ranking
	TopN int `json:"top_n"`
}

/*
Category is a statistical domain token such as "02-SOCIAL".
*/
type Category string

const (
	CategorySocial       Category = "02-SOCIAL"
	CategoryEconomic     Category = "03-ECONOMIC"
	CategoryHousing      Category = "04-HOUSING"
	CategoryDemographics Category = "05-DEMOGRAPHICS"
)

/*
Number returns the leading numeric token of the category ("02" for "02-SOCIAL").
*/
func (c Category) Number() string {
	num, _, _ := strings.Cut(string(c), "-")
	return num
}

func (c Category) String() string {
	return string(c)
}

/*
DefaultCategories returns the four categories in their fixed order.
*/
func DefaultCategories() []Category {
	return []Category{CategorySocial, CategoryEconomic, CategoryHousing, CategoryDemographics}
}

/*
DefaultStates returns the 50 states plus DC and PR.
*/
func DefaultStates() []string {
	return []string{
		"AK", "AL", "AR", "AZ", "CA", "CO", "CT", "DC", "DE", "FL", "GA", "HI", "IA",
		"ID", "IL", "IN", "KS", "KY", "LA", "MA", "MD", "ME", "MI", "MN", "MO", "MS",
		"MT", "NC", "ND", "NE", "NH", "NJ", "NM", "NV", "NY", "OH", "OK", "OR", "PA",
		"PR", "RI", "SC", "SD", "TN", "TX", "UT", "VA", "VT", "WA", "WI", "WV", "WY",
	}
}

/*
Default config
*/
func DefaultConfig() *Config {
	return &Config{
		// source table configuration
		Data: DataConfig{
			Root:       ".",
			Prefix:     "ALLCD",
			States:     DefaultStates(),
			Categories: DefaultCategories(),
		},
		// output configuration
		Output: OutputConfig{
			Dir:  "results",
			TopN: 5,
		},
		// logging configuration
		LogLevel: "warn",
	}
}

/*
LoadFromFile loads the configuration from a JSON file.
*/
func LoadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

/*
LoadFromEnv loads the configuration from the environment variables.
*/
func LoadFromEnv() (*Config, error) {
	config := DefaultConfig()
	config.ApplyEnv()
	return config, nil
}

/*
ApplyEnv overlays DISTSIM_* environment variables onto the configuration.
*/
func (c *Config) ApplyEnv() {
	// Data config
	if root := os.Getenv("DISTSIM_DATA_ROOT"); root != "" {
		c.Data.Root = root
	}

	if prefix := os.Getenv("DISTSIM_PREFIX"); prefix != "" {
		c.Data.Prefix = prefix
	}

	if states := os.Getenv("DISTSIM_STATES"); states != "" {
		c.Data.States = splitList(states)
	}

	if cats := os.Getenv("DISTSIM_CATEGORIES"); cats != "" {
		list := splitList(cats)
		c.Data.Categories = make([]Category, len(list))
		for i, s := range list {
			c.Data.Categories[i] = Category(s)
		}
	}

	// Output config
	if dir := os.Getenv("DISTSIM_OUTPUT_DIR"); dir != "" {
		c.Output.Dir = dir
	}

	if topStr := os.Getenv("DISTSIM_TOP_N"); topStr != "" {
		if top, err := strconv.Atoi(topStr); err == nil {
			c.Output.TopN = top
		}
	}

	if level := os.Getenv("DISTSIM_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

/*
Validate checks if the configuration is valid
*/
func (c *Config) Validate() error {
	if len(c.Data.States) == 0 {
		return fmt.Errorf("no states configured")
	}
	if len(c.Data.Categories) == 0 {
		return fmt.Errorf("no categories configured")
	}
	for _, cat := range c.Data.Categories {
		if _, err := strconv.Atoi(cat.Number()); err != nil {
			return fmt.Errorf("invalid category %q: missing numeric prefix", cat)
		}
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory is empty")
	}
	if c.Output.TopN < 0 {
		return fmt.Errorf("invalid top_n value: %d", c.Output.TopN)
	}
	return nil
}
