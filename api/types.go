package api

// Bot defines the interactions of a diamond-collecting bot with the API.
type Bot interface {
	Start(*State) error
	Move(*State) (Move, error)
	End(*State) error
}

// State defines the game state on a given tick: the board snapshot and the
// bot's own object on it.
//
// Everything else in this file is wireformat types of the diamonds game
// engine.
type State struct {
	Board Board
	Me    GameObject
}

// Game object type tags.
const (
	TypeBot           = "BotGameObject"
	TypeDiamond       = "DiamondGameObject"
	TypeTeleporter    = "TeleportGameObject"
	TypeDiamondButton = "DiamondButtonGameObject"
	TypeBase          = "BaseGameObject"
)

// BaseObjectID is the id of base objects synthesized from a bot's
// properties. The engine never issues negative ids.
const BaseObjectID = -1

type InfoResponse struct {
	APIVersion string   `json:"apiversion"`
	Author     string   `json:"author,omitempty"`
	Version    string   `json:"version,omitempty"`
	Bots       []string `json:"bots,omitempty"`
}

type TickRequest struct {
	Board Board      `json:"board"`
	You   GameObject `json:"you"`
}

type MoveResponse struct {
	DX        int    `json:"dx"`
	DY        int    `json:"dy"`
	Direction string `json:"direction"`
}

type Board struct {
	ID                       int          `json:"id"`
	Width                    int          `json:"width"`
	Height                   int          `json:"height"`
	MinimumDelayBetweenMoves int          `json:"minimumDelayBetweenMoves"`
	Objects                  []GameObject `json:"gameObjects"`
}

type GameObject struct {
	ID         int         `json:"id"`
	Position   Position    `json:"position"`
	Type       string      `json:"type"`
	Properties *Properties `json:"properties,omitempty"`
}

// Properties are the optional attributes of a game object. A nil field means
// the engine did not send it; defaults are applied by the consumer.
type Properties struct {
	Points           *int      `json:"points,omitempty"`
	PairID           *string   `json:"pairId,omitempty"`
	Diamonds         *int      `json:"diamonds,omitempty"`
	Score            *int      `json:"score,omitempty"`
	Name             *string   `json:"name,omitempty"`
	InventorySize    *int      `json:"inventorySize,omitempty"`
	CanTackle        *bool     `json:"canTackle,omitempty"`
	MillisecondsLeft *int      `json:"millisecondsLeft,omitempty"`
	TimeJoined       *string   `json:"timeJoined,omitempty"`
	Base             *Position `json:"base,omitempty"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Int, Bool and String return pointers for building Properties literals.
func Int(v int) *int { return &v }
func Bool(v bool) *bool { return &v }
func String(v string) *string { return &v }
