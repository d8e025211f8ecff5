package advice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneybrief/internal/model"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateMissingProfile(t *testing.T) {
	c := Default()
	c.Profiles = c.Profiles[:4]
	assert.ErrorIs(t, c.Validate(), ErrIncompleteCatalog)
}

func TestValidateNeedsUnconditionalResource(t *testing.T) {
	c := Default()
	c.Resources = c.Resources[1:]
	assert.ErrorIs(t, c.Validate(), ErrIncompleteCatalog)
}

func TestRecommendationsProfileOnly(t *testing.T) {
	c := Default()
	recs := c.Recommendations(model.ProfileModerate, model.Answers{
		"knowledge": "advanced", "timeHorizon": "more5", "investmentPortion": "more50",
	})
	assert.Equal(t, []string{
		"Balance growth and income with a diversified portfolio of stocks and bonds.",
		"Consider allocating 40-50% to fixed income and 50-60% to equities.",
		"Include a mix of growth and value stocks across different sectors.",
	}, recs)
}

func TestRecommendationsWithAnswerRules(t *testing.T) {
	c := Default()
	recs := c.Recommendations(model.ProfileConservative, model.Answers{
		"knowledge": "basic", "timeHorizon": "less1", "investmentPortion": "less10",
	})
	require.Len(t, recs, 6)
	assert.Equal(t, "Consider working with a financial advisor to build your investment knowledge.", recs[3])
	assert.Equal(t, "For short-term goals, maintain higher cash reserves and focus on liquidity.", recs[4])
	assert.Equal(t, "Consider increasing your savings rate to build your investment portfolio faster.", recs[5])
}

func TestRecommendationsUnknownProfile(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Recommendations(model.Profile("Reckless"), model.Answers{}))
	assert.Equal(t, "No profile description available.", c.Description(model.Profile("Reckless")))
}

func TestResourcesAlwaysIncludeBaseline(t *testing.T) {
	c := Default()
	res := c.ResourcesFor(model.ProfileModerate, model.Answers{})
	require.Len(t, res, 1)
	assert.Equal(t, "https://www.investor.gov/introduction-investing", res[0].Link)
}

func TestResourcesByPredicateAndProfile(t *testing.T) {
	c := Default()
	answers := model.Answers{"hasInvestments": "yes", "riskTolerance": "sell"}

	res := c.ResourcesFor(model.ProfileAggressive, answers)
	var links []string
	for _, r := range res {
		links = append(links, r.LinkText)
	}
	assert.Equal(t, []string{
		"Investor.gov: Introduction to Investing",
		"Investor.gov: Asset Allocation",
		"FINRA: Understanding Volatility",
		"FINRA: Concentration Risk",
	}, links)

	assert.Len(t, c.ResourcesFor(model.ProfileModerate, answers), 3)
}

func TestClosingLinesAreCopied(t *testing.T) {
	c := Default()
	lines := c.ClosingLines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", c.Closing[0])
}

func TestCatalogResourcesRoundTrip(t *testing.T) {
	src := Default()
	data, err := json.Marshal(src)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "resources")

	var got Catalog
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Resources, len(src.Resources))
	require.NoError(t, got.Validate())
	assert.Equal(t, src.ResourcesFor(model.ProfileModerate, model.Answers{}),
		got.ResourcesFor(model.ProfileModerate, model.Answers{}))
}
