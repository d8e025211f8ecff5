package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneybrief/internal/advice"
	"moneybrief/internal/model"
)

var fixedTime = time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)

func testBuilder() *Builder {
	b := NewBuilder(advice.Default())
	b.now = func() time.Time { return fixedTime }
	return b
}

func moderateAnswers() model.Answers {
	return model.Answers{
		"age":               "35-44",
		"investmentGoal":    "balanced",
		"knowledge":         "basic",
		"riskTolerance":     "wait",
		"timeHorizon":       "3-5",
		"investmentPortion": "10-25",
		"hasInvestments":    "yes",
		"investmentTypes":   "index funds & <b>bonds</b>",
	}
}

func TestBuild(t *testing.T) {
	r := testBuilder().Build(moderateAnswers())

	// 6+6+3+5+6+4 = 30 of 60
	assert.Equal(t, 50, r.RiskScore)
	assert.Equal(t, model.ProfileModerate, r.Profile)
	assert.Equal(t, "#10B981", r.Band.Start)
	assert.Contains(t, r.Description, "balance between growth and stability")
	assert.Len(t, r.Recommendations, 4)
	assert.Equal(t, fixedTime, r.GeneratedAt)

	require.Len(t, r.Responses, 8)
	assert.Equal(t, model.Response{QuestionID: "age", Question: "Age Range", Answer: "35–44"}, r.Responses[0])
	assert.Equal(t, "Current Investments", r.Responses[6].Question)
	assert.Equal(t, "index funds & <b>bonds</b>", r.Responses[7].Answer)

	require.NotEmpty(t, r.Resources)
	assert.Equal(t, "Investor.gov: Introduction to Investing", r.Resources[0].LinkText)
}

func TestBuildPrunesHiddenAndUnknownAnswers(t *testing.T) {
	answers := moderateAnswers()
	answers["hasInvestments"] = "no"
	answers["shoeSize"] = "44"

	r := testBuilder().Build(answers)
	require.Len(t, r.Responses, 7)
	_, ok := r.Answers["investmentTypes"]
	assert.False(t, ok)
	_, ok = r.Answers["shoeSize"]
	assert.False(t, ok)
}

func TestBuildEmptyAnswers(t *testing.T) {
	r := testBuilder().Build(model.Answers{})
	assert.Equal(t, 0, r.RiskScore)
	assert.Equal(t, model.ProfileConservative, r.Profile)
	assert.Empty(t, r.Responses)
	assert.NotEmpty(t, r.Resources)
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "Investor_Profile_Moderately_Aggressive.pdf", PDFFilename(model.ProfileModeratelyAggressive))
	assert.Equal(t, "Investor_Profile_Moderate.pdf", PDFFilename(model.ProfileModerate))
}

func TestRenderEmailHTML(t *testing.T) {
	html, err := RenderEmailHTML(testBuilder().Build(moderateAnswers()))
	require.NoError(t, err)

	assert.Contains(t, html, "<p>Thank you for completing the Investor Profile Assessment.</p>")
	assert.Contains(t, html, "<h2>Your Investment Profile: Moderate</h2>")
	assert.Contains(t, html, "<h3>Risk Tolerance Score: 50</h3>")
	assert.Contains(t, html, "<li><b>Age Range:</b> 35–44</li>")
	assert.Contains(t, html, `Review the basics of saving and investing before making changes to your portfolio: <a href="https://www.investor.gov/introduction-investing">Investor.gov: Introduction to Investing</a>`)
	assert.NotContains(t, html, "<b>bonds</b>", "free text is escaped")
	assert.Contains(t, html, "&lt;b&gt;bonds&lt;/b&gt;")
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(testBuilder().Build(moderateAnswers()))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<div class="profile">Moderate</div>`)
	assert.Contains(t, html, "width: 50%")
	assert.Contains(t, html, "#10B981")
	assert.Contains(t, html, "Generated on March 4, 2025")
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, testBuilder().Build(moderateAnswers())))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("#3B82F6")
	assert.Equal(t, []int{59, 130, 246}, []int{r, g, b})

	r, g, b = hexRGB("teal")
	assert.Equal(t, []int{156, 163, 175}, []int{r, g, b})
}
