package config

// Spritefile represents the structure of a sprite configuration file.
type Spritefile struct {
	Version     string      `yaml:"version"     json:"version"`
	BatchWindow string      `yaml:"batchWindow" json:"batchWindow"`
	Targets     []TargetDTO `yaml:"targets"     json:"targets"`
}

// TargetDTO represents one aggregation target in the configuration.
type TargetDTO struct {
	Output      string          `yaml:"output"      json:"output"`
	Declaration *DeclarationDTO `yaml:"declaration" json:"declaration"`
	Reload      []string        `yaml:"reload"      json:"reload"`
	Input       []InputDTO      `yaml:"input"       json:"input"`
}

// DeclarationDTO represents the optional type declaration of a target.
type DeclarationDTO struct {
	Path      string `yaml:"path"      json:"path"`
	Export    string `yaml:"export"    json:"export"`
	Namespace string `yaml:"namespace" json:"namespace"`
}

// InputDTO represents a source root of a target.
type InputDTO struct {
	Path             string              `yaml:"path"             json:"path"`
	Color            string              `yaml:"color"            json:"color"`
	SymbolAttributes SymbolAttributesDTO `yaml:"symbolAttributes" json:"symbolAttributes"`
}

// SymbolAttributesDTO toggles the generated symbol attributes. Unset toggles keep their defaults.
type SymbolAttributesDTO struct {
	Width   *bool `yaml:"width"   json:"width"`
	Height  *bool `yaml:"height"  json:"height"`
	ViewBox *bool `yaml:"viewBox" json:"viewBox"`
	Fill    *bool `yaml:"fill"    json:"fill"`
}
