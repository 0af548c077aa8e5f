package agent

import "fmt"

const systemPrompt = "You are an AI playing a Space Invaders-style game. Analyze the game state and respond with the best action."

// BuildPrompt renders the user message for one decision
func BuildPrompt(req Request) string {
	return fmt.Sprintf(`You are an AI playing a Space Invaders-style game in a terminal.

Game Rules:
- You control a player character 'A' at the bottom of the screen
- Enemies are represented by patterns like '><', 'oo', and '/O\'
- Player bullets are '^' and enemy bullets are 'v'
- You can move left, right, shoot, or wait
- At most a few of your bullets can be in flight at once
- Goal: Destroy all enemies while avoiding enemy bullets

Previous frame:
%s

Current frame:
%s

Last action taken: %s

Respond with a JSON object in this exact format:
{
    "action": "[MoveLeft|MoveRight|Shoot|Wait]",
    "reasoning": "Brief explanation of why this action was chosen",
    "confidence": 0.85
}

Consider:
1. Enemy positions and movement patterns
2. Incoming enemy bullets to avoid
3. Optimal shooting opportunities
4. Player position relative to threats
5. Previous action effectiveness`, fence(req.Previous), fence(req.Current), req.LastAction)
}

func fence(frame []byte) string {
	return "```\n" + string(frame) + "\n```"
}
