package catalog

import (
	"github.com/kartolab/marshrutka/core"
)

// Sample returns the built-in demonstration catalog: seven Moscow-area
// churches and monasteries. Each call returns a fresh copy safe to mutate.
func Sample() []*core.POI {
	return []*core.POI{
		{
			Id:           1,
			Name:         "Храм Василия Блаженного",
			Location:     core.Coordinates{Lat: 55.7525, Lon: 37.6231},
			Category:     "church",
			Tags:         []string{"храм", "собор", "старый", "православный", "москва"},
			Rating:       4.8,
			VisitMinutes: 90,
		},
		{
			Id:           2,
			Name:         "Новодевичий монастырь",
			Location:     core.Coordinates{Lat: 55.7260, Lon: 37.5563},
			Category:     "monastery",
			Tags:         []string{"монастырь", "женский", "старый", "исторический", "москва"},
			Rating:       4.7,
			VisitMinutes: 120,
		},
		{
			Id:           3,
			Name:         "Успенский собор Московского Кремля",
			Location:     core.Coordinates{Lat: 55.7510, Lon: 37.6171},
			Category:     "church",
			Tags:         []string{"собор", "кремль", "старый", "православный", "москва"},
			Rating:       4.9,
			VisitMinutes: 60,
		},
		{
			Id:           4,
			Name:         "Церковь Вознесения в Коломенском",
			Location:     core.Coordinates{Lat: 55.6674, Lon: 37.6709},
			Category:     "church",
			Tags:         []string{"церковь", "древний", "памятник", "коломенское", "москва"},
			Rating:       4.5,
			VisitMinutes: 45,
		},
		{
			Id:           5,
			Name:         "Саввино-Сторожевский монастырь",
			Location:     core.Coordinates{Lat: 55.7286, Lon: 36.8246},
			Category:     "monastery",
			Tags:         []string{"монастырь", "мужской", "звенигород", "подмосковье"},
			Rating:       4.6,
			VisitMinutes: 180,
		},
		{
			Id:           6,
			Name:         "Храм Христа Спасителя",
			Location:     core.Coordinates{Lat: 55.7445, Lon: 37.6054},
			Category:     "church",
			Tags:         []string{"храм", "собор", "кафедральный", "москва"},
			Rating:       4.7,
			VisitMinutes: 75,
		},
		{
			Id:           7,
			Name:         "Донской монастырь",
			Location:     core.Coordinates{Lat: 55.7146, Lon: 37.6027},
			Category:     "monastery",
			Tags:         []string{"монастырь", "некрополь", "старый", "москва"},
			Rating:       4.4,
			VisitMinutes: 90,
		},
	}
}

// SampleSynonyms returns the synonym groups accompanying the sample
// catalog. Multi-word members such as "в москве" are matched as
// substrings of the searchable text, not re-tokenized.
func SampleSynonyms() []*core.SynonymGroup {
	return []*core.SynonymGroup{
		{Key: "церковь", Tokens: []string{"церковь", "храм", "собор", "часовня"}},
		{Key: "монастырь", Tokens: []string{"монастырь", "обитель", "лавра"}},
		{Key: "старый", Tokens: []string{"старый", "древний", "старинный", "исторический"}},
		{Key: "москва", Tokens: []string{"москва", "московский", "в москве"}},
	}
}
