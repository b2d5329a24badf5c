package persona

import "strings"

// suggestedPrompts maps persona ids to interview starters shown before the
// first turn.
var suggestedPrompts = map[string][]string{
	"priya-sharma": {
		"What specific safety features should I prioritise for late-night driving in Bangalore?",
		"How do SOS and GPS tracking work across Honda models in India?",
		"Which compact SUVs have the strongest safety ratings for women commuters?",
		"How can I stay safe during test drives and dealership visits?",
		"Is paying extra for ADAS worth it for my use case?",
	},
	"rajesh-kumar": {
		"Which family car gives best mileage and low maintenance under ₹10 lakh?",
		"Compare EMI options for 5 vs 7 seater choices in Lucknow.",
		"What hidden costs should I budget for in year one?",
		"Resale value: Honda vs Maruti for 5–7 year horizon?",
		"Safety features worth prioritising for kids’ school runs?",
	},
	"aisha-patel": {
		"Which models support easy entry/exit and hand controls in India?",
		"What accessibility retrofits are common and what do they cost?",
		"Dealerships in Mumbai known for disability-friendly service?",
		"Can you benchmark international accessibility standards vs local options?",
		"How to ensure warranty compliance after accessibility modifications?",
	},
	"vikram-reddy": {
		"Suggest a premium-looking family SUV good for business travel too.",
		"Brand reputation: how does Honda compare in Hyderabad market?",
		"Total cost of ownership vs perceived status—what’s the balance?",
		"Which features matter for clients and joint family usage together?",
		"Service network reliability for frequent intercity trips?",
	},
	"neha-desai": {
		"EV vs Hybrid for Pune—lifecycle emissions and running costs?",
		"Charging infra reality near my neighbourhood and offices?",
		"Government subsidies and policies I can actually use this year?",
		"Are manufacturers’ green claims credible—any third-party audits?",
		"Which models align best with sustainability without blowing budget?",
	},
	"arjun-singh": {
		"Which SUVs handle rough rural roads and city commutes reliably?",
		"Ground clearance and durability benchmarks that actually matter.",
		"Service availability along Jaipur–village routes and costs.",
		"Best resale options in rural secondary markets?",
		"What should I inspect for construction site usage?",
	},
	"meera-krishnan": {
		"Easy-to-drive automatic cars with top safety ratings for seniors?",
		"Features that help with joint pain and low-stress city driving.",
		"Insurance considerations for a 62-year-old buyer in Chennai.",
		"How complex are ADAS systems for first-time users?",
		"Which dealerships are patient and senior-friendly?",
	},
	"kabir-ahmed": {
		"Sporty-looking cars with connected features under ₹10–12 lakh.",
		"Best financing options for first-time buyer with limited credit.",
		"Which features impress clients but stay within budget?",
		"Android Auto, OTA updates, and app features—what’s real value?",
		"How to avoid FOMO and pick smart?",
	},
	"sunita-iyer": {
		"Most reliable, low-maintenance cars for night-shift commutes in Kochi.",
		"Safety features that matter for hospital duty timings.",
		"Total cost of ownership: service, insurance, fuel for 5 years.",
		"How to validate manufacturer safety claims quickly?",
		"Practical checklists for test drive and purchase day.",
	},
}

// SuggestedPrompts returns interview starters for a persona, with a
// generic fallback for unknown ids.
func SuggestedPrompts(id string) []string {
	if prompts, ok := suggestedPrompts[id]; ok {
		return prompts
	}
	return []string{
		"What should I evaluate first given my needs?",
		"Compare 2–3 models that fit my situation.",
		"What hidden costs should I watch for?",
	}
}

// FollowupPrompts generates follow-up questions from a persona's pain
// points and key concerns, deduplicated and capped at maxPrompts.
func FollowupPrompts(p Persona, maxPrompts int) []string {
	var prompts []string
	for i, pp := range p.PainPoints {
		if i == 3 {
			break
		}
		prompts = append(prompts, "Could you describe a recent situation related to "+strings.ToLower(pp)+"?")
	}
	for i, kc := range p.KeyConcerns {
		if i == 3 {
			break
		}
		prompts = append(prompts, "How does "+strings.ToLower(kc)+" influence your selection and budget?")
	}
	prompts = append(prompts,
		"Are there any deal-breakers we haven't discussed?",
		"What trade-offs would you be willing to make?",
		"Which two features matter most and why?",
	)

	seen := make(map[string]struct{}, len(prompts))
	deduped := prompts[:0]
	for _, q := range prompts {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		deduped = append(deduped, q)
	}
	if maxPrompts > 0 && len(deduped) > maxPrompts {
		deduped = deduped[:maxPrompts]
	}
	return deduped
}
