package prakriti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dosha(d Dosha) *Dosha { return &d }

func TestComposePrimaryOnlyEqualsTemplate(t *testing.T) {
	for _, d := range Order {
		t.Run(string(d), func(t *testing.T) {
			got := Compose(Result{Primary: d})
			want := recommendationTemplates[d]
			assert.Equal(t, want, got)
		})
	}
}

func TestComposeVataExample(t *testing.T) {
	traits, _ := Template(Vata)
	c := Classify(traits)
	recs := Compose(c.Result)

	assert.Equal(t, []string{"Warm porridge with ghee and nuts."}, recs.Diet.Breakfast)
	assert.Equal(t, []string{"Go to bed by 10 PM."}, recs.Schedule.Night)
	assert.Equal(t, "At least 2 liters of warm water daily.", recs.Diet.WaterIntake)
}

func TestComposeAppendsSecondary(t *testing.T) {
	p := recommendationTemplates[Pitta]
	s := recommendationTemplates[Kapha]

	got := Compose(Result{Primary: Pitta, Secondary: dosha(Kapha)})

	lists := []struct {
		name     string
		got      []string
		primary  []string
		secondar []string
	}{
		{"breakfast", got.Diet.Breakfast, p.Diet.Breakfast, s.Diet.Breakfast},
		{"lunch", got.Diet.Lunch, p.Diet.Lunch, s.Diet.Lunch},
		{"dinner", got.Diet.Dinner, p.Diet.Dinner, s.Diet.Dinner},
		{"snacks", got.Diet.Snacks, p.Diet.Snacks, s.Diet.Snacks},
		{"fruits", got.Diet.Fruits, p.Diet.Fruits, s.Diet.Fruits},
		{"morning", got.Schedule.Morning, p.Schedule.Morning, s.Schedule.Morning},
		{"afternoon", got.Schedule.Afternoon, p.Schedule.Afternoon, s.Schedule.Afternoon},
		{"evening", got.Schedule.Evening, p.Schedule.Evening, s.Schedule.Evening},
		{"night", got.Schedule.Night, p.Schedule.Night, s.Schedule.Night},
		{"followUp", got.FollowUp, p.FollowUp, s.FollowUp},
	}
	for _, l := range lists {
		t.Run(l.name, func(t *testing.T) {
			require.Len(t, l.got, len(l.primary)+len(l.secondar))
			assert.Equal(t, l.primary, l.got[:len(l.primary)])
			assert.Equal(t, l.secondar, l.got[len(l.primary):])
		})
	}

	assert.Equal(t, p.Diet.WaterIntake, got.Diet.WaterIntake)
}

func TestComposeDoesNotAliasTemplates(t *testing.T) {
	recs := Compose(Result{Primary: Vata, Secondary: dosha(Pitta)})
	recs.FollowUp[0] = "changed"
	recs.FollowUp = append(recs.FollowUp, "more")

	solo := Compose(Result{Primary: Vata})
	solo.Diet.Breakfast[0] = "changed"

	assert.Equal(t, []string{"Daily breathing exercises to reduce anxiety."}, recommendationTemplates[Vata].FollowUp)
	assert.Equal(t, []string{"Warm porridge with ghee and nuts."}, recommendationTemplates[Vata].Diet.Breakfast)
}

func TestComposeIsDeterministic(t *testing.T) {
	r := Result{Primary: Kapha, Secondary: dosha(Vata)}
	assert.Equal(t, Compose(r), Compose(r))
}

func TestComposeUnknownPrimary(t *testing.T) {
	recs := Compose(Result{Primary: "Ether"})
	assert.Empty(t, recs.Diet.Breakfast)
	assert.Empty(t, recs.FollowUp)
	assert.NotNil(t, recs.FollowUp)
	assert.Equal(t, "", recs.Diet.WaterIntake)
}
