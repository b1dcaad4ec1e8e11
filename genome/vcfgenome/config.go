package vcfgenome

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

/*
VariantRange is a range of genomic positions on a chromosome whose
variants are used as matrix columns. Start and End delimit a zero-based
half-open interval.
*/
type VariantRange struct {
	Chr   string `yaml:"chr"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

/*
Config describes where to build a genotype matrix and ancestry catalog
from: the variant ranges to use as columns, the path of the VCF file
for each chromosome and the path of the population-mapping file.
*/
type Config struct {
	VariantRanges   []VariantRange    `yaml:"variant_ranges"`
	ChrPaths        map[string]string `yaml:"chr_paths"`
	UserMappingPath string            `yaml:"user_mapping_path"`
}

/*
ReadConfig takes a slice of bytes with a YAML configuration document
and returns the parsed Config or an error. Every variant range must
have a VCF path for its chromosome and a population-mapping path must
be set.
*/
func ReadConfig(data []byte) (*Config, error) {
	config := &Config{}
	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing variant ranges config: %v", err)
	}
	if len(config.VariantRanges) == 0 {
		return nil, fmt.Errorf("variant ranges config declares no variant ranges")
	}
	if config.UserMappingPath == "" {
		return nil, fmt.Errorf("variant ranges config declares no user mapping path")
	}
	for _, vr := range config.VariantRanges {
		if _, ok := config.ChrPaths[vr.Chr]; !ok {
			return nil, fmt.Errorf("variant ranges config declares no VCF path for chromosome %q", vr.Chr)
		}
	}
	return config, nil
}

/*
ReadConfigFromFile takes a filepath string, reads its contents and uses
ReadConfig to parse it and return the Config or an error. If the file
indicated by the filepath cannot be opened for reading an error will be
returned.
*/
func ReadConfigFromFile(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading variant ranges config %s: %v", filepath, err)
	}
	config, err := ReadConfig(data)
	if err != nil {
		err = fmt.Errorf("parsing variant ranges config %s: %v", filepath, err)
	}
	return config, err
}
