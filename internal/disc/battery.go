package disc

// Option is one answer choice, tagged with the trait it counts toward.
type Option struct {
	Text  string
	Trait Trait
}

// Item is a single questionnaire item with exactly one option per trait.
type Item struct {
	Prompt  string
	Options [NumTraits]Option
}

// Battery returns the standard 12-item questionnaire.
func Battery() []Item {
	return standardBattery
}

var standardBattery = []Item{
	{
		Prompt: "In a team project, you prefer to:",
		Options: [NumTraits]Option{
			{"Make the decisions and take the lead", Dominance},
			{"Motivate and connect people", Influence},
			{"Make sure everyone is comfortable", Stability},
			{"Plan every detail carefully", Conformity},
		},
	},
	{
		Prompt: "When facing a problem, you:",
		Options: [NumTraits]Option{
			{"Act fast and push for results", Dominance},
			{"Talk it through with others to find solutions", Influence},
			{"Analyze calmly before acting", Stability},
			{"Research detailed data and facts", Conformity},
		},
	},
	{
		Prompt: "At work, you value most:",
		Options: [NumTraits]Option{
			{"Challenges and competition", Dominance},
			{"Recognition and social interaction", Influence},
			{"Stability and harmony", Stability},
			{"Precision and quality", Conformity},
		},
	},
	{
		Prompt: "Under pressure, you tend to:",
		Options: [NumTraits]Option{
			{"Be direct and demanding", Dominance},
			{"Stay upbeat and talk more", Influence},
			{"Seek consensus and avoid conflict", Stability},
			{"Withdraw and analyze further", Conformity},
		},
	},
	{
		Prompt: "You are most motivated by:",
		Options: [NumTraits]Option{
			{"Power and authority", Dominance},
			{"Popularity and fun", Influence},
			{"Security and loyalty", Stability},
			{"Knowledge and perfection", Conformity},
		},
	},
	{
		Prompt: "Your communication style is:",
		Options: [NumTraits]Option{
			{"Direct and to the point", Dominance},
			{"Enthusiastic and persuasive", Influence},
			{"Calm and empathetic", Stability},
			{"Detailed and logical", Conformity},
		},
	},
	{
		Prompt: "When learning something new, you:",
		Options: [NumTraits]Option{
			{"Want to apply it immediately", Dominance},
			{"Prefer learning in a group", Influence},
			{"Like going at your own pace", Stability},
			{"Study it in depth before practicing", Conformity},
		},
	},
	{
		Prompt: "What bothers you most is:",
		Options: [NumTraits]Option{
			{"Wasted time and slowness", Dominance},
			{"Being ignored or rejected", Influence},
			{"Sudden changes and conflict", Stability},
			{"Mistakes and lack of standards", Conformity},
		},
	},
	{
		Prompt: "In a meeting, you usually:",
		Options: [NumTraits]Option{
			{"Get straight to the point", Dominance},
			{"Energize and engage people", Influence},
			{"Listen more than you speak", Stability},
			{"Ask detailed questions", Conformity},
		},
	},
	{
		Prompt: "Your greatest strength is:",
		Options: [NumTraits]Option{
			{"Determination and focus on results", Dominance},
			{"Creativity and charisma", Influence},
			{"Patience and reliability", Stability},
			{"Analysis and attention to detail", Conformity},
		},
	},
	{
		Prompt: "You prefer to work:",
		Options: [NumTraits]Option{
			{"Independently, in charge", Dominance},
			{"In dynamic, creative teams", Influence},
			{"In predictable, cooperative environments", Stability},
			{"With clear, documented processes", Conformity},
		},
	},
	{
		Prompt: "When you receive negative feedback, you:",
		Options: [NumTraits]Option{
			{"Want to know how to improve right away", Dominance},
			{"Feel upset but get over it quickly", Influence},
			{"Take it personally", Stability},
			{"Weigh whether the feedback is fair", Conformity},
		},
	},
}
