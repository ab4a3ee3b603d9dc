package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

var (
	ErrEmptyChain   = errors.New("ledger: empty chain")
	ErrOutOfRange   = errors.New("ledger: index out of range")
	ErrInvalidBlock = errors.New("ledger: invalid block")
)

// genesisPrevHash marks the first block of every chain.
const genesisPrevHash = "0"

// Chain is safe for concurrent use.
type Chain struct {
	mu     sync.RWMutex
	blocks []Block
}

// New creates a chain holding only the genesis block.
func New() *Chain {
	c := &Chain{}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  genesisPrevHash,
		Action:    Action{Type: ActionGenesis},
	}
	genesis.Hash = calculateHash(genesis)
	c.blocks = append(c.blocks, genesis)
	return c
}

// Append records an action on top of the latest block.
//
// Parameters:
//   - action: the step being recorded
//   - roundID: the round the action belongs to
//   - extra: optional free-form metadata; only the first map is used
//
// Returns an error wrapping ErrInvalidBlock if the new block does not link to
// the latest one.
func (c *Chain) Append(action Action, roundID string, extra ...map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := c.blocks[len(c.blocks)-1]

	block := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Action:    action,
		Metadata: Metadata{
			RoundID: roundID,
			Extra:   extraMsg,
		},
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return err
	}
	c.blocks = append(c.blocks, block)
	return nil
}

// Latest returns the most recently appended block
func (c *Chain) Latest() (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.blocks) == 0 {
		return Block{}, ErrEmptyChain
	}
	return c.blocks[len(c.blocks)-1], nil
}

func (c *Chain) ByIndex(index int) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.blocks) {
		return Block{}, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return c.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// Blocks returns a copy of the chain in append order.
func (c *Chain) Blocks() []Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.blocks)
}

// Verify checks the genesis block and then every block's index, hash and
// link to its predecessor.
func (c *Chain) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.blocks) == 0 {
		return ErrEmptyChain
	}
	genesis := c.blocks[0]
	if genesis.PrevHash != genesisPrevHash || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("%w: genesis", ErrInvalidBlock)
	}
	for i := 1; i < len(c.blocks); i++ {
		if err := validateBlock(c.blocks[i], c.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrInvalidBlock, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: expected prev hash %s, got %s", ErrInvalidBlock, previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrInvalidBlock, expected, current.Hash)
	}
	return nil
}

// calculateHash covers every field of the block except Hash itself.
func calculateHash(block Block) string {
	actionBytes, _ := json.Marshal(block.Action)
	extraBytes, _ := json.Marshal(block.Metadata.Extra)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		actionBytes,
		block.Metadata.RoundID,
		extraBytes,
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
