// model/menu.go
package model

import "time"

// CafeteriaMenu is one dish offered at a cafeteria on a given day.
// ID is zero for addendum records synthesized from the side-dish feed.
type CafeteriaMenu struct {
	ID          int64     `json:"id"`
	CafeteriaID int       `json:"cafeteria_id"`
	Date        time.Time `json:"date"`
	TypeShort   string    `json:"type_short"`
	TypeLong    string    `json:"type_long"`
	TypeNr      int       `json:"type_nr"`
	Name        string    `json:"name"`
}

// MenuFeed mirrors the remote export document. The upstream endpoint
// publishes every field as a string, numeric ones included, e.g.
// {"id":"25544","mensa_id":"411","date":"2011-06-20","type_short":"tg",
// "type_long":"Tagesgericht 3","type_nr":"3","name":"Cordon bleu"}.
type MenuFeed struct {
	Menus     []MenuFeedItem `json:"mensa_menu"`
	Addendums []MenuFeedItem `json:"mensa_beilagen"`
}

// MenuFeedItem is one raw record of the feed. Addendum items carry no
// id and no type_nr.
type MenuFeedItem struct {
	ID        string `json:"id"`
	MensaID   string `json:"mensa_id"`
	Date      string `json:"date"`
	TypeShort string `json:"type_short"`
	TypeLong  string `json:"type_long"`
	TypeNr    string `json:"type_nr"`
	Name      string `json:"name"`
}
