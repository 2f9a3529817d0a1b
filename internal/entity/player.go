package entity

// Player - a participant of the turn loop, identified by the tag of its marker.
type Player struct {
	ID   string `json:"id"`
	Mark Marker `json:"mark"`
}

// NewPlayers - builds players from identifiers, in turn order.
func NewPlayers(ids []string) ([]*Player, error) {
	markers, err := ParseMarkers(ids)
	if err != nil {
		return nil, err
	}

	players := make([]*Player, 0, len(ids))
	for i, id := range ids {
		players = append(players, &Player{ID: id, Mark: markers[i]})
	}

	return players, nil
}
