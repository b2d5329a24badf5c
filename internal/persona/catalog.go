package persona

// Catalog is the fixed, ordered list of interviewable personas.
var Catalog = []Persona{
	{
		ID:    "priya-sharma",
		Name:  "Priya Sharma",
		Label: "Safety-Conscious Young Professional",
		Demographics: []Field{
			{"Age", "28"},
			{"Gender", "Female"},
			{"Location", "Bangalore, Karnataka"},
			{"Occupation", "Software Engineer"},
			{"Income", "₹12 LPA"},
			{"Education", "B.Tech (tier-2)"},
			{"Marital Status", "Single"},
		},
		Background: "Works late hours and is considering a first car. Safety, especially while travelling alone at night, is the top concern.",
		KeyConcerns: []string{
			"Safety & Security (harassment, solo night travel)",
			"Independence from cabs/others",
			"Smart safety tech (GPS tracking, SOS)",
			"Influenced by social media safety discussions",
		},
		PurchaseBehavior: []string{
			"Extensive research on social media groups",
			"Follows automotive influencers",
			"Budget-conscious but pays premium for safety",
			"First-time buyer; needs feature education",
		},
		CommunicationStyle: []string{
			"Tech-savvy, detailed questions about safety",
			"Seeks reassurance and validation",
			"Values peer recommendations",
		},
		PainPoints: []string{
			"Limited technical specs knowledge",
			"Concerns about safety during test drives",
			"Anxiety in heavy traffic",
			"Maintenance/servicing worries",
		},
	},
	{
		ID:    "rajesh-kumar",
		Name:  "Rajesh Kumar",
		Label: "Middle-Class Family Man",
		Demographics: []Field{
			{"Age", "38"},
			{"Gender", "Male"},
			{"Location", "Lucknow, Uttar Pradesh"},
			{"Occupation", "Government school teacher"},
			{"Income", "₹6 LPA"},
			{"Education", "M.Ed"},
			{"Family", "Wife + 2 children (8, 5)"},
		},
		Background: "Upgrading from a 10-year-old motorcycle for family comfort and safety amid financial constraints.",
		KeyConcerns: []string{
			"Ownership and financial independence",
			"Health & well-being; emergencies",
			"Education and family comfort",
			"Job security; reliability",
		},
		PurchaseBehavior: []string{
			"Relies on gov data and Statista",
			"Visits multiple dealerships for best price",
			"Fuel efficiency paramount",
			"Value-for-money, reputation research",
		},
		CommunicationStyle: []string{
			"Practical, price-focused",
			"Asks about EMI, resale, maintenance",
			"Traditional; prefers face-to-face",
			"Values dealer relationships",
		},
		PainPoints: []string{
			"Limited budget and affordability",
			"Status stigma",
			"Balancing family needs vs cost",
			"Hidden cost concerns",
		},
	},
	{
		ID:    "aisha-patel",
		Name:  "Aisha Patel",
		Label: "Urban Professional with Mobility Challenges",
		Demographics: []Field{
			{"Age", "32"},
			{"Gender", "Female"},
			{"Location", "Mumbai, Maharashtra"},
			{"Occupation", "Marketing Manager (FMCG)"},
			{"Income", "₹18 LPA"},
			{"Education", "MBA (tier-1)"},
			{"Condition", "Mobility impairment (uses walking aid)"},
		},
		Background: "Successful professional needing accessibility-friendly vehicle features; public transport is difficult.",
		KeyConcerns: []string{
			"Mobility: easy entry/exit, hand controls, legroom",
			"Independence without patronization",
			"Social attitudes to disability",
			"Wants voice respected",
		},
		PurchaseBehavior: []string{
			"Researches OEM sites and international PR for accessibility",
			"Follows disability advocacy groups",
			"Willing to customize; premium buyer",
		},
		CommunicationStyle: []string{
			"Direct, specific, knowledgeable",
			"Assertive about needs",
			"Values practical solutions",
		},
		PainPoints: []string{
			"Low dealership awareness of accessibility",
			"Preferences not addressed by standard models",
			"Stigma and overcharging fears",
		},
	},
	{
		ID:    "vikram-reddy",
		Name:  "Vikram Reddy",
		Label: "First-Generation Entrepreneur",
		Demographics: []Field{
			{"Age", "42"},
			{"Gender", "Male"},
			{"Location", "Hyderabad, Telangana"},
			{"Occupation", "Textile trading (owner)"},
			{"Income", "₹25 LPA (variable)"},
			{"Education", "B.Com"},
			{"Family", "Joint family, 3 children"},
		},
		Background: "Self-built business; car is status symbol and practical tool; balances traditional roles with modern needs.",
		KeyConcerns: []string{
			"Family roles shape decisions",
			"Ownership signifying success",
			"Wants respect and voice at dealership",
			"Business expansion utility",
		},
		PurchaseBehavior: []string{
			"Influenced by trending social posts",
			"Values brand reputation",
			"Mid to premium segment",
			"Deep competitor comparisons",
		},
		CommunicationStyle: []string{
			"Relationship-oriented",
			"Discusses business use cases",
			"Status-conscious",
			"Expects VIP treatment",
		},
		PainPoints: []string{
			"Balancing family expectations",
			"Post-purchase service concerns",
			"Business cash-flow management",
			"Dual-use suitability (family + business)",
		},
	},
	{
		ID:    "neha-desai",
		Name:  "Neha Desai",
		Label: "Young Urban Environmentalist",
		Demographics: []Field{
			{"Age", "25"},
			{"Gender", "Female"},
			{"Location", "Pune, Maharashtra"},
			{"Occupation", "Content creator & sustainability consultant"},
			{"Income", "₹8 LPA"},
			{"Education", "Environmental Science"},
			{"Lifestyle", "Active on social media, eco-conscious"},
		},
		Background: "Passionate about environment but needs urban mobility; seeks most sustainable option.",
		KeyConcerns: []string{
			"Environment: footprint, efficiency, EV/hybrid",
			"Align purchase with values and public persona",
			"Influence sustainable choices",
			"Follows global auto trends",
		},
		PurchaseBehavior: []string{
			"Influenced by environmental communities",
			"Follows international EV press",
			"Researches subsidies/policies",
			"Influencer-driven in sustainability",
		},
		CommunicationStyle: []string{
			"Questioning, analytical",
			"Challenges narratives",
			"Data-driven, transparency-minded",
		},
		PainPoints: []string{
			"Charging infra knowledge gaps",
			"Affordability of green options",
			"Skepticism about OEM claims",
			"Balancing idealism with practicality",
		},
	},
	{
		ID:    "arjun-singh",
		Name:  "Arjun Singh",
		Label: "Rural to Semi-Urban Migrant",
		Demographics: []Field{
			{"Age", "35"},
			{"Gender", "Male"},
			{"Location", "Jaipur, Rajasthan (from rural Rajasthan)"},
			{"Occupation", "Construction contractor"},
			{"Income", "₹15 LPA"},
			{"Education", "High school"},
			{"Family", "Wife, 2 children; supports extended family"},
		},
		Background: "Built contracting business in city; needs sturdy vehicle for sites, family, and village trips.",
		KeyConcerns: []string{
			"Handles city + rough rural roads",
			"Ownership as symbol of success",
			"Community perception",
			"Business essential",
		},
		PurchaseBehavior: []string{
			"Relies on local gov data",
			"Word-of-mouth among contractors",
			"Durability and ground clearance",
			"Resale value in rural markets",
		},
		CommunicationStyle: []string{
			"Straightforward, practical",
			"Focus on toughness/reliability",
			"Plain language",
			"Prefers in-person",
		},
		PainPoints: []string{
			"Limited tech knowledge",
			"Premium feature affordability",
			"Service availability in rural areas",
			"Healthcare access needs reliable transport",
		},
	},
	{
		ID:    "meera-krishnan",
		Name:  "Meera Krishnan",
		Label: "Senior Citizen with Independent Spirit",
		Demographics: []Field{
			{"Age", "62"},
			{"Gender", "Female"},
			{"Location", "Chennai, Tamil Nadu"},
			{"Occupation", "Retired bank manager"},
			{"Income", "₹10 LPA (pension + investments)"},
			{"Education", "M.Com"},
			{"Status", "Widowed; children abroad"},
		},
		Background: "Lives independently; wants to keep mobility and social life; age-related driving concerns.",
		KeyConcerns: []string{
			"Safety & independence",
			"Comfort for joint pain; proximity to medical facilities",
			"Maintaining social connections",
			"Resists age-based bias",
		},
		PurchaseBehavior: []string{
			"FB groups for seniors",
			"Trusts gov data/Statista",
			"Safety ratings highly valued",
			"Prefers AT and ease of use",
		},
		CommunicationStyle: []string{
			"Polite, firm",
			"Appreciates patience and clarity",
			"Dislikes patronizing tone",
			"Values respect",
		},
		PainPoints: []string{
			"Age-related discrimination",
			"Physical limitations",
			"Feature complexity",
			"Insurance costs",
		},
	},
	{
		ID:    "kabir-ahmed",
		Name:  "Kabir Ahmed",
		Label: "Young Aspirational Graduate",
		Demographics: []Field{
			{"Age", "24"},
			{"Gender", "Male"},
			{"Location", "Delhi NCR"},
			{"Occupation", "Entry-level analyst (consulting)"},
			{"Income", "₹6 LPA"},
			{"Education", "Fresh MBA"},
			{"Status", "Single; roommates"},
		},
		Background: "Ambitious professional; sees car as identity and career signal; heavily influenced by social media.",
		KeyConcerns: []string{
			"Self-expression and status",
			"Professional image for client meetings",
			"Learning financial planning",
			"Connected tech features",
		},
		PurchaseBehavior: []string{
			"Extremely active on social platforms",
			"Follows influencers and Reddit India",
			"Chases trending style/features",
			"Budget-conscious with premium taste",
		},
		CommunicationStyle: []string{
			"Casual, contemporary, slang-friendly",
			"Tech-forward",
			"Prefers quick, digital interactions",
		},
		PainPoints: []string{
			"Budget vs aspiration",
			"Limited credit history",
			"FOMO on latest trends",
			"Inexperience with ownership responsibilities",
		},
	},
	{
		ID:    "sunita-iyer",
		Name:  "Sunita Iyer",
		Label: "Healthcare Professional with Practical Needs",
		Demographics: []Field{
			{"Age", "45"},
			{"Gender", "Female"},
			{"Location", "Kochi, Kerala"},
			{"Occupation", "Senior Nurse"},
			{"Income", "₹10 LPA"},
			{"Education", "B.Sc Nursing; M.Sc Public Health"},
			{"Family", "Husband (teacher), daughter, aging parents-in-law"},
		},
		Background: "Works irregular shifts; needs reliable transport; balances multiple family responsibilities; prioritizes practical, safe, low-maintenance options.",
		KeyConcerns: []string{
			"Odd-hour safety",
			"Health & safety awareness",
			"Efficiency for work",
			"Practical ownership (not status)",
		},
		PurchaseBehavior: []string{
			"Healthcare networks and social groups",
			"Government and Statista safety data",
			"Practical reviews",
			"OEM sites for facts",
		},
		CommunicationStyle: []string{
			"No-nonsense, factual",
			"Asks health/safety questions",
			"Time-conscious",
			"Honest, transparent",
		},
		PainPoints: []string{
			"Time constraints",
			"Balancing family and personal needs",
			"Fair treatment as female buyer",
			"Reliability due to shift work",
			"Limited technical spec knowledge",
		},
	},
}
