package catalog

import "github.com/dharmasatrya/flowerforecast/internal/models"

// AOI names match the forecast model configuration.
var defaultLocations = []models.Location{
	{
		ID:      1,
		Name:    "Hà Giang - Tam Giác Mạch",
		Slug:    "ha-giang-tam-giac-mach",
		AOIName: "Ha_Giang_TamGiacMach",
		Flower: models.Flower{
			Species:        "tam_giac_mach",
			CommonName:     "Buckwheat",
			ScientificName: "Fagopyrum esculentum",
			LocalName:      "Tam Giác Mạch",
			Color:          "pink-white",
		},
		Geo: models.Geo{
			Country:      "Vietnam",
			Region:       "Northeast",
			Province:     "Ha Giang",
			Latitude:     23.15,
			Longitude:    105.2,
			ElevationMin: 800,
			ElevationMax: 1500,
		},
		BloomSeason: models.BloomSeason{
			StartMonth:   9,
			StartDay:     25,
			EndMonth:     12,
			EndDay:       20,
			PeakMonths:   []int{10, 11},
			DurationDays: 60,
		},
		Images:      models.Images{Hero: "/images/ha-giang-hero.jpg", Gallery: []string{}},
		Description: "Famous buckwheat flower fields covering the mountainous Ha Giang plateau. The pink and white flowers create stunning landscapes.",
		Tips: []string{
			"Book accommodation 2-3 months in advance during peak season",
			"Best time for photography: Early morning (6-8 AM)",
			"Bring warm clothes - mountain weather can be cold",
			"Motorbike loop tour is highly recommended",
		},
	},
	{
		ID:      2,
		Name:    "Mộc Châu - Hoa Mận",
		Slug:    "moc-chau-prunus",
		AOIName: "Moc_Chau_Prunus",
		Flower: models.Flower{
			Species:        "prunus_mume",
			CommonName:     "Plum Blossom",
			ScientificName: "Prunus mume",
			LocalName:      "Hoa Mận",
			Color:          "white-pink",
		},
		Geo: models.Geo{
			Country:      "Vietnam",
			Region:       "Northwest",
			Province:     "Son La",
			Latitude:     20.86,
			Longitude:    104.65,
			ElevationMin: 1000,
			ElevationMax: 1100,
		},
		BloomSeason: models.BloomSeason{
			StartMonth:   1,
			StartDay:     20,
			EndMonth:     2,
			EndDay:       28,
			PeakMonths:   []int{2},
			DurationDays: 21,
		},
		Images:      models.Images{Hero: "/images/moc-chau-hero.jpg", Gallery: []string{}},
		Description: "White plum blossoms blanket the Moc Chau plateau during spring. Best visited during Tet holiday.",
		Tips: []string{
			"Visit during Tet holiday (late January - early February)",
			"Cool weather around 15-20°C, bring jacket",
			"Try local specialties: fresh milk, strawberries",
			"Combine with dairy farm visits",
		},
	},
	{
		ID:      3,
		Name:    "Fansipan - Đỗ Quyên",
		Slug:    "hoang-lien-rhododendron",
		AOIName: "Hoang_Lien_Rhododendron",
		Flower: models.Flower{
			Species:        "rhododendron_spp",
			CommonName:     "Rhododendron",
			ScientificName: "Rhododendron spp.",
			LocalName:      "Đỗ Quyên",
			Color:          "red-purple-pink",
		},
		Geo: models.Geo{
			Country:      "Vietnam",
			Region:       "Northwest",
			Province:     "Lao Cai",
			Latitude:     22.3,
			Longitude:    103.8,
			ElevationMin: 1500,
			ElevationMax: 3200,
		},
		BloomSeason: models.BloomSeason{
			StartMonth:   2,
			StartDay:     25,
			EndMonth:     5,
			EndDay:       31,
			PeakMonths:   []int{4},
			DurationDays: 90,
		},
		Images:      models.Images{Hero: "/images/fansipan-hero.jpg", Gallery: []string{}},
		Description: "Red and purple rhododendron flowers bloom on Vietnam's highest peak (3,143m). Spectacular mountain scenery.",
		Tips: []string{
			"Take cable car from Sapa to Fansipan summit",
			"High altitude - prepare for thin air and cold weather",
			"Best views in April during peak bloom",
			"Combine with Sapa town visit",
		},
	},
	{
		ID:      4,
		Name:    "Lào Cai - Đỗ Quyên",
		Slug:    "lao-cai-rhododendron",
		AOIName: "Lao_Cai_Rhododendron",
		Flower: models.Flower{
			Species:        "rhododendron_spp",
			CommonName:     "Rhododendron",
			ScientificName: "Rhododendron spp.",
			LocalName:      "Đỗ Quyên",
			Color:          "red-purple-pink",
		},
		Geo: models.Geo{
			Country:      "Vietnam",
			Region:       "Northwest",
			Province:     "Lao Cai",
			Latitude:     22.26,
			Longitude:    103.93,
			ElevationMin: 2000,
			ElevationMax: 3400,
		},
		BloomSeason: models.BloomSeason{
			StartMonth:   3,
			StartDay:     1,
			EndMonth:     6,
			EndDay:       15,
			PeakMonths:   []int{4},
			DurationDays: 90,
		},
		Images:      models.Images{Hero: "/images/lao-cai-hero.jpg", Gallery: []string{}},
		Description: "Ancient rhododendron forests in the high mountains of Lao Cai province. Remote and pristine.",
		Tips: []string{
			"Trekking required - hire experienced local guide",
			"Multi-day trek recommended (2-3 days)",
			"Camping gear needed for overnight stays",
			"Very remote area - prepare thoroughly",
		},
	},
}
