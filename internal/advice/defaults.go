package advice

import "moneybrief/internal/model"

// DefaultVersion identifies the built-in catalog
const DefaultVersion = "2025.1"

// Default returns the built-in advisory catalog
func Default() *Catalog {
	return &Catalog{
		Version: DefaultVersion,
		Profiles: []ProfileAdvice{
			{
				Profile:     model.ProfileConservative,
				Description: "You prioritize protecting your capital over growth. You prefer stable, low-risk investments and are uncomfortable with significant market fluctuations. Your portfolio should focus on preserving wealth while generating modest income.",
				Recommendations: []string{
					"Focus on capital preservation with high-quality bonds and certificates of deposit.",
					"Consider allocating 70-80% to fixed income and 20-30% to equities.",
					"Maintain an emergency fund covering 6-12 months of expenses.",
				},
			},
			{
				Profile:     model.ProfileModeratelyConservative,
				Description: "You seek to protect your capital while achieving modest growth. You can tolerate some market fluctuations but prefer stability. Your portfolio should balance income generation with some growth-oriented investments.",
				Recommendations: []string{
					"Prioritize income and modest growth with a mix of bonds and dividend-paying stocks.",
					"Consider allocating 60% to fixed income and 40% to equities.",
					"Explore blue-chip stocks with consistent dividend histories.",
				},
			},
			{
				Profile:     model.ProfileModerate,
				Description: "You aim for a balance between growth and stability. You understand market fluctuations are normal and can tolerate moderate volatility. Your portfolio should have a balanced mix of growth and income investments.",
				Recommendations: []string{
					"Balance growth and income with a diversified portfolio of stocks and bonds.",
					"Consider allocating 40-50% to fixed income and 50-60% to equities.",
					"Include a mix of growth and value stocks across different sectors.",
				},
			},
			{
				Profile:     model.ProfileModeratelyAggressive,
				Description: "You prioritize long-term growth and can tolerate significant market fluctuations. You understand that higher returns come with higher risk and are comfortable with volatility. Your portfolio should focus on growth with some stability.",
				Recommendations: []string{
					"Focus on long-term growth with a higher allocation to equities.",
					"Consider allocating 25-30% to fixed income and 70-75% to equities.",
					"Explore international markets for diversification opportunities.",
				},
			},
			{
				Profile:     model.ProfileAggressive,
				Description: "You seek maximum long-term growth and can tolerate substantial market fluctuations. You have a long time horizon and are comfortable with significant volatility. Your portfolio should focus primarily on growth investments.",
				Recommendations: []string{
					"Maximize growth potential with a portfolio heavily weighted toward equities.",
					"Consider allocating 10-15% to fixed income and 85-90% to equities.",
					"Explore emerging markets and small-cap stocks for higher growth potential.",
				},
			},
		},
		Rules: []Rule{
			{
				Text: "Consider working with a financial advisor to build your investment knowledge.",
				When: []Predicate{{QuestionID: "knowledge", Values: []string{"none", "basic"}}},
			},
			{
				Text: "For short-term goals, maintain higher cash reserves and focus on liquidity.",
				When: []Predicate{{QuestionID: "timeHorizon", Values: []string{"less1", "1-3"}}},
			},
			{
				Text: "Consider increasing your savings rate to build your investment portfolio faster.",
				When: []Predicate{{QuestionID: "investmentPortion", Values: []string{"less10"}}},
			},
		},
		Resources: []ResourceRule{
			{
				Resource: model.Resource{
					Text:     "Review the basics of saving and investing before making changes to your portfolio.",
					Link:     "https://www.investor.gov/introduction-investing",
					LinkText: "Investor.gov: Introduction to Investing",
				},
			},
			{
				Resource: model.Resource{
					Text:     "Learn how stocks, bonds and funds work.",
					Link:     "https://www.finra.org/investors/investing/investing-basics",
					LinkText: "FINRA: Investing Basics",
				},
				When: []Predicate{{QuestionID: "knowledge", Values: []string{"none", "basic"}}},
			},
			{
				Resource: model.Resource{
					Text:     "See how regular contributions grow over time.",
					Link:     "https://www.investor.gov/financial-tools-calculators/calculators/compound-interest-calculator",
					LinkText: "Compound Interest Calculator",
				},
				When: []Predicate{{QuestionID: "investmentPortion", Values: []string{"less10", "10-25"}}},
			},
			{
				Resource: model.Resource{
					Text:     "Compare savings accounts and other liquid options for short-term goals.",
					Link:     "https://www.consumerfinance.gov/consumer-tools/bank-accounts/",
					LinkText: "CFPB: Bank Accounts",
				},
				When: []Predicate{{QuestionID: "timeHorizon", Values: []string{"less1", "1-3"}}},
			},
			{
				Resource: model.Resource{
					Text:     "Check how your current holdings fit a target asset allocation.",
					Link:     "https://www.investor.gov/introduction-investing/getting-started/asset-allocation",
					LinkText: "Investor.gov: Asset Allocation",
				},
				When: []Predicate{{QuestionID: "hasInvestments", Values: []string{"yes"}}},
			},
			{
				Resource: model.Resource{
					Text:     "Prepare for market downturns before they happen.",
					Link:     "https://www.finra.org/investors/insights/volatility",
					LinkText: "FINRA: Understanding Volatility",
				},
				When: []Predicate{{QuestionID: "riskTolerance", Values: []string{"sell"}}},
			},
			{
				Resource: model.Resource{
					Text:     "Understand the risks of concentrated positions in high-growth assets.",
					Link:     "https://www.finra.org/investors/insights/concentration-risk",
					LinkText: "FINRA: Concentration Risk",
				},
				Profiles: []model.Profile{model.ProfileModeratelyAggressive, model.ProfileAggressive},
			},
		},
		Closing: []string{
			"Thank you for completing the Investor Profile Assessment.",
			"Below is a summary of your results. This report is educational and is not personalized financial advice.",
		},
	}
}
