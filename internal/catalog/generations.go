package catalog

// GenerationDef maps a generation label to an inclusive range of global indices.
type GenerationDef struct {
	Label string `json:"label"` // User-facing label (e.g., "1")
	Start int    `json:"start"` // First global index, 1-based, inclusive
	End   int    `json:"end"`   // Last global index, inclusive
}

// Contains reports whether the global index falls inside this generation.
func (g *GenerationDef) Contains(index int) bool {
	return index >= g.Start && index <= g.End
}

// GenerationsFile represents the structure of generations.json.
type GenerationsFile struct {
	Generations []GenerationDef `json:"generations"`
}

// LoadGenerations loads generation definitions from the embedded generations.json file.
func LoadGenerations() ([]GenerationDef, error) {
	file, err := Load[GenerationsFile]("generations.json")
	if err != nil {
		return nil, err
	}
	return file.Generations, nil
}
