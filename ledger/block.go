package ledger

// ActionType names what happened in a recorded step.
type ActionType string

const (
	ActionGenesis  ActionType = "genesis"
	ActionShuffle  ActionType = "shuffle"
	ActionDraw     ActionType = "draw"
	ActionDiscard  ActionType = "discard"
	ActionEvaluate ActionType = "evaluate"
)

// Action is the payload of a block. Cards holds the card labels involved, in
// the order they moved.
type Action struct {
	Type     ActionType `json:"type"`
	Hand     uint64     `json:"hand,omitempty"`
	Cards    []string   `json:"cards,omitempty"`
	Category string     `json:"category,omitempty"`
	Score    int        `json:"score,omitempty"`
}

// Block is one link of the chain
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Action    Action   `json:"action"`
	Metadata  Metadata `json:"metadata"`
}

type Metadata struct {
	RoundID string            `json:"round_id"`
	Extra   map[string]string `json:"extra,omitempty"`
}
