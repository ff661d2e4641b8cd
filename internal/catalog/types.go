package catalog

// ColorOption is one folder color choice. Light is the card fill, Dark the
// accent, Text the label color drawn over Light.
type ColorOption struct {
	Name  string `yaml:"name" json:"name"`
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
	Text  string `yaml:"text" json:"text"`
}

// Background is one editor background image choice.
type Background struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// paletteFile mirrors the embedded palette YAML.
type paletteFile struct {
	Colors []ColorOption `yaml:"colors"`
}

// backgroundsFile mirrors the embedded backgrounds YAML.
type backgroundsFile struct {
	Backgrounds []Background `yaml:"backgrounds"`
}
