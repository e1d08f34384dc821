package models

type SymptomType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
	Icon string `gorm:"not null" json:"icon"`
}

type BuiltinSymptom struct {
	Name string
	Icon string
}

func DefaultBuiltinSymptoms() []BuiltinSymptom {
	return []BuiltinSymptom{
		{Name: "Cramps", Icon: "🩸"},
		{Name: "Headache", Icon: "🤕"},
		{Name: "Mood swings", Icon: "😢"},
		{Name: "Bloating", Icon: "🎈"},
		{Name: "Fatigue", Icon: "😴"},
		{Name: "Breast tenderness", Icon: "💔"},
		{Name: "Acne", Icon: "🔴"},
		{Name: "Back pain", Icon: "🦴"},
		{Name: "Nausea", Icon: "🤢"},
		{Name: "Spotting", Icon: "🩹"},
		{Name: "Irritability", Icon: "😤"},
		{Name: "Insomnia", Icon: "🌙"},
		{Name: "Food cravings", Icon: "🍫"},
		{Name: "Diarrhea", Icon: "🚽"},
		{Name: "Constipation", Icon: "🪨"},
	}
}
