package world

// Workshops are fixed map cells, one per crafting skill.
var workshops = map[string]Position{
	"weaponcrafting":  {X: 2, Y: 1},
	"gearcrafting":    {X: 3, Y: 1},
	"jewelrycrafting": {X: 1, Y: 3},
	"cooking":         {X: 1, Y: 1},
	"mining":          {X: 1, Y: 5},
	"woodcutting":     {X: -2, Y: -3},
}

func WorkshopFor(skill string) (Position, bool) {
	pos, ok := workshops[skill]
	return pos, ok
}
