package prakriti

// DietPlan is the diet part of a recommendation bundle.
type DietPlan struct {
	Breakfast   []string `json:"breakfast"`
	Lunch       []string `json:"lunch"`
	Dinner      []string `json:"dinner"`
	Snacks      []string `json:"snacks"`
	WaterIntake string   `json:"waterIntake"`
	Fruits      []string `json:"fruits"`
}

// Schedule is the daily routine part of a recommendation bundle.
type Schedule struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
	Night     []string `json:"night"`
}

// Recommendations is the bundle derived from a classification.
type Recommendations struct {
	Diet     DietPlan `json:"diet"`
	Schedule Schedule `json:"schedule"`
	FollowUp []string `json:"followUp"`
}

var recommendationTemplates = map[Dosha]Recommendations{
	Pitta: {
		Diet: DietPlan{
			Breakfast:   []string{"Oatmeal with cooling fruits like pears and pomegranate."},
			Lunch:       []string{"Steamed vegetables with rice and cooling herbs like coriander."},
			Dinner:      []string{"Light soups with cucumber salad."},
			Snacks:      []string{"Coconut water, fresh mint juice."},
			WaterIntake: "At least 2.5 liters of cool water daily.",
			Fruits:      []string{"Melon, pears, pomegranate."},
		},
		Schedule: Schedule{
			Morning:   []string{"Gentle yoga or stretching."},
			Afternoon: []string{"Short rest after lunch."},
			Evening:   []string{"Light walk during sunset."},
			Night:     []string{"Avoid late-night work; sleep before 10:30 PM."},
		},
		FollowUp: []string{"Weekly meditation to manage irritability."},
	},
	Vata: {
		Diet: DietPlan{
			Breakfast:   []string{"Warm porridge with ghee and nuts."},
			Lunch:       []string{"Rice with dal and steamed vegetables."},
			Dinner:      []string{"Vegetable stew with roti."},
			Snacks:      []string{"Warm herbal teas like ginger tea."},
			WaterIntake: "At least 2 liters of warm water daily.",
			Fruits:      []string{"Banana, mango, papaya."},
		},
		Schedule: Schedule{
			Morning:   []string{"Oil massage before a warm shower."},
			Afternoon: []string{"Short nap if needed."},
			Evening:   []string{"Gentle evening meditation."},
			Night:     []string{"Go to bed by 10 PM."},
		},
		FollowUp: []string{"Daily breathing exercises to reduce anxiety."},
	},
	Kapha: {
		Diet: DietPlan{
			Breakfast:   []string{"Light smoothie with ginger and berries."},
			Lunch:       []string{"Millet roti with spicy vegetables."},
			Dinner:      []string{"Clear vegetable soup."},
			Snacks:      []string{"Herbal teas like tulsi or cinnamon tea."},
			WaterIntake: "At least 2 liters of warm water daily.",
			Fruits:      []string{"Apples, pears, pomegranate."},
		},
		Schedule: Schedule{
			Morning:   []string{"Brisk walking or jogging."},
			Afternoon: []string{"Avoid heavy naps."},
			Evening:   []string{"Dance or aerobic activity."},
			Night:     []string{"Light stretching before bed."},
		},
		FollowUp: []string{"Bi-weekly progress check-ins."},
	},
}

// RecommendationTemplate returns a copy of the fixed bundle for d.
func RecommendationTemplate(d Dosha) (Recommendations, bool) {
	tpl, ok := recommendationTemplates[d]
	if !ok {
		return Recommendations{}, false
	}
	return compose(tpl, nil), true
}

// Compose builds the bundle for r: the primary's template, followed by the
// secondary's list entries when a secondary is present. Water intake always
// comes from the primary. The result never shares backing arrays with the
// templates.
func Compose(r Result) Recommendations {
	primary, ok := recommendationTemplates[r.Primary]
	if !ok {
		return empty()
	}
	if r.Secondary == nil {
		return compose(primary, nil)
	}
	secondary, ok := recommendationTemplates[*r.Secondary]
	if !ok {
		return compose(primary, nil)
	}
	return compose(primary, &secondary)
}

func compose(p Recommendations, s *Recommendations) Recommendations {
	var add Recommendations
	if s != nil {
		add = *s
	}
	return Recommendations{
		Diet: DietPlan{
			Breakfast:   merge(p.Diet.Breakfast, add.Diet.Breakfast),
			Lunch:       merge(p.Diet.Lunch, add.Diet.Lunch),
			Dinner:      merge(p.Diet.Dinner, add.Diet.Dinner),
			Snacks:      merge(p.Diet.Snacks, add.Diet.Snacks),
			WaterIntake: p.Diet.WaterIntake,
			Fruits:      merge(p.Diet.Fruits, add.Diet.Fruits),
		},
		Schedule: Schedule{
			Morning:   merge(p.Schedule.Morning, add.Schedule.Morning),
			Afternoon: merge(p.Schedule.Afternoon, add.Schedule.Afternoon),
			Evening:   merge(p.Schedule.Evening, add.Schedule.Evening),
			Night:     merge(p.Schedule.Night, add.Schedule.Night),
		},
		FollowUp: merge(p.FollowUp, add.FollowUp),
	}
}

func merge(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func empty() Recommendations {
	return compose(Recommendations{}, nil)
}
