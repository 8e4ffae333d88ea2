package state

import "math/rand/v2"

// Remarks are the filler lines answered to input that is not a command.
var Remarks = []string{
	"I do not think so.",
	"Let's try something different.",
	"Something seems wrong.",
	"Wait! What am I doing?",
	"Wait, that doesn't add up.",
	"That wasn't in the plan.",
	"Something feels off here.",
	"I have a bad feeling about this.",
	"This is definitely not right",
	"Dumb f@#$.",
}

func pickRemark(rng *rand.Rand) string {
	return Remarks[rng.IntN(len(Remarks))]
}
