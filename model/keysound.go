package model

type KeysoundReport struct {
	ID    string `json:"id" yaml:"id"`
	File  string `json:"file" yaml:"file"`
	Slots int    `json:"slots" yaml:"slots"`
	Used  bool   `json:"used" yaml:"used"`
}

type ChartReport struct {
	Path         string           `json:"path" yaml:"path"`
	NumLines     int              `json:"num_lines" yaml:"num_lines"`
	NumKeysounds int              `json:"num_keysounds" yaml:"num_keysounds"`
	Keysounds    []KeysoundReport `json:"keysounds" yaml:"keysounds"`
	Unused       []string         `json:"unused" yaml:"unused"`
}
