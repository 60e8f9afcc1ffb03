package matchpoints

import "github.com/osse101/Pickem_Go/internal/domain"

// WrestlerRole labels a side of a match as favorite, underdog or even
func WrestlerRole(match domain.Match, side domain.Side) domain.Role {
	if match.Favorite == domain.SideNone {
		return domain.RoleEven
	}
	if side == match.Favorite {
		return domain.RoleFavorite
	}
	return domain.RoleUnderdog
}

// PickingPoints returns what a correct pick on each side of the match is worth
func PickingPoints(match domain.Match) domain.PickingPoints {
	if match.Favorite == domain.SideNone {
		return domain.PickingPoints{
			SideAPoints: EvenMatchPoints,
			SideBPoints: EvenMatchPoints,
		}
	}

	return domain.PickingPoints{
		SideAPoints: pointsForRole(match, WrestlerRole(match, domain.SideA)),
		SideBPoints: pointsForRole(match, WrestlerRole(match, domain.SideB)),
	}
}

// CalculatePickPoints returns the points a pick earned once the match is decided.
// Undecided matches, empty selections and wrong selections earn nothing.
func CalculatePickPoints(match domain.Match, pick domain.Pick) int {
	if match.Winner == domain.SideNone || pick.SelectedSide == domain.SideNone {
		return 0
	}
	if pick.SelectedSide != match.Winner {
		return 0
	}
	return pointsForRole(match, WrestlerRole(match, pick.SelectedSide))
}

func pointsForRole(match domain.Match, role domain.Role) int {
	switch role {
	case domain.RoleFavorite:
		return match.FavoritePoints
	case domain.RoleUnderdog:
		return match.UnderdogPoints
	default:
		return EvenMatchPoints
	}
}
