package label

// DefaultTags returns the built-in tag library. Weights are the 1.0 default;
// synonym order matters, the first entry per language is the canonical name.
func DefaultTags() []*Tag {
	return []*Tag{
		{
			ID:       "beach",
			Category: CategoryScenery,
			Weight:   1.0,
			Synonyms: map[Language][]string{
				LangEN: {"beach", "seaside", "coast"},
				LangZH: {"海滩", "沙滩", "海滨"},
				LangJA: {"ビーチ", "海岸", "浜辺"},
			},
			Description: map[Language]string{
				LangEN: "Sandy or pebbly shore by the ocean or sea",
				LangZH: "海洋或湖泊旁的沙滩或砾石滩",
			},
		},
		{
			ID:       "mountain",
			Category: CategoryScenery,
			Weight:   1.0,
			Synonyms: map[Language][]string{
				LangEN: {"mountain", "alpine", "peak"},
				LangZH: {"山脉", "山峰", "山区"},
				LangJA: {"山", "マウンテン", "山岳"},
			},
		},
		{
			ID:       "historical",
			Category: CategoryCulture,
			Weight:   1.0,
			Synonyms: map[Language][]string{
				LangEN: {"historical", "ancient", "heritage"},
				LangZH: {"历史古迹", "古迹", "文化遗产"},
				LangJA: {"歴史的", "遺跡", "文化遺産"},
			},
		},
		{
			ID:       "family_friendly",
			Category: CategoryCrowd,
			Weight:   1.0,
			Synonyms: map[Language][]string{
				LangEN: {"family-friendly", "kids-friendly", "child-friendly"},
				LangZH: {"适合家庭", "亲子友好", "儿童友好"},
				LangJA: {"家族向け", "子供連れOK", "ファミリー向け"},
			},
		},
		{
			ID:       "budget",
			Category: CategoryBudget,
			Weight:   1.0,
			Synonyms: map[Language][]string{
				LangEN: {"budget", "economical", "affordable"},
				LangZH: {"经济型", "平价", "实惠"},
				LangJA: {"低予算", "経済的", "手頃"},
			},
		},
		{
			ID:       "luxury",
			Category: CategoryBudget,
			Weight:   1.0,
			Synonyms: map[Language][]string{
				LangEN: {"luxury", "premium", "high-end"},
				LangZH: {"豪华", "高端", "奢华"},
				LangJA: {"ラグジュアリー", "高級", "贅沢"},
			},
		},
	}
}

// SampleDestinations returns demo destinations for seeding a fresh engine.
func SampleDestinations() []*Destination {
	return []*Destination{
		{
			ID:                  "geoname:1816670",
			Names:               map[Language]string{LangEN: "Beijing", LangZH: "北京", LangJA: "北京"},
			Coordinates:         &Coordinates{Lat: 39.90, Lng: 116.41},
			CountryCode:         "CN",
			AdministrativeLevel: "municipality",
			Tags: map[string]float64{
				"historical": 0.95, "culture": 0.9, "family_friendly": 0.7, "luxury": 0.6,
			},
			Metadata: map[string]any{
				"population": 21540000,
				"timezone":   "Asia/Shanghai",
				"famous_for": []string{"Great Wall", "Forbidden City"},
			},
		},
		{
			ID:                  "geoname:1850147",
			Names:               map[Language]string{LangEN: "Tokyo", LangZH: "东京", LangJA: "東京"},
			Coordinates:         &Coordinates{Lat: 35.68, Lng: 139.76},
			CountryCode:         "JP",
			AdministrativeLevel: "metropolis",
			Tags: map[string]float64{
				"culture": 0.85, "luxury": 0.8, "family_friendly": 0.75, "historical": 0.6,
			},
			Metadata: map[string]any{
				"population": 13960000,
				"timezone":   "Asia/Tokyo",
				"famous_for": []string{"Shibuya Crossing", "Senso-ji Temple"},
			},
		},
		{
			ID:                  "geoname:5128581",
			Names:               map[Language]string{LangEN: "New York City", LangZH: "纽约", LangJA: "ニューヨーク"},
			Coordinates:         &Coordinates{Lat: 40.71, Lng: -74.01},
			CountryCode:         "US",
			AdministrativeLevel: "city",
			Tags: map[string]float64{
				"luxury": 0.9, "culture": 0.85, "family_friendly": 0.65,
			},
			Metadata: map[string]any{
				"population": 8419000,
				"timezone":   "America/New_York",
				"famous_for": []string{"Statue of Liberty", "Times Square"},
			},
		},
		{
			ID:                  "geoname:2643743",
			Names:               map[Language]string{LangEN: "London", LangZH: "伦敦", LangJA: "ロンドン"},
			Coordinates:         &Coordinates{Lat: 51.51, Lng: -0.13},
			CountryCode:         "GB",
			AdministrativeLevel: "city",
			Tags: map[string]float64{
				"historical": 0.9, "culture": 0.85, "luxury": 0.7, "family_friendly": 0.7,
			},
			Metadata: map[string]any{
				"population": 8900000,
				"timezone":   "Europe/London",
				"famous_for": []string{"Big Ben", "British Museum"},
			},
		},
		{
			ID:                  "geoname:1808926",
			Names:               map[Language]string{LangEN: "Hangzhou", LangZH: "杭州", LangJA: "杭州"},
			Coordinates:         &Coordinates{Lat: 30.25, Lng: 120.16},
			CountryCode:         "CN",
			AdministrativeLevel: "city",
			Tags: map[string]float64{
				"historical": 0.9, "mountain": 0.7, "family_friendly": 0.8,
			},
			Metadata: map[string]any{
				"population": 10360000,
				"timezone":   "Asia/Shanghai",
			},
		},
	}
}

// Seed loads the default tag library and sample destinations into m.
func Seed(m *Manager) {
	for _, tag := range DefaultTags() {
		m.AddTag(tag)
	}
	for _, dest := range SampleDestinations() {
		m.AddDestination(dest)
	}
}
