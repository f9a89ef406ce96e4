package message

import (
	"encoding/hex"

	"github.com/solwire/solwire/pkg/core/transaction"
	"github.com/solwire/solwire/pkg/util"
)

// view is the JSON representation of a decoded message.
type view struct {
	Header          transaction.Header        `json:"header"`
	AccountKeys     []transaction.AccountMeta `json:"accountKeys"`
	RecentBlockhash util.Hash                 `json:"recentBlockhash"`
	Instructions    []instructionView         `json:"instructions"`
}

type instructionView struct {
	ProgramIDIndex uint8                     `json:"programIdIndex"`
	ProgramID      util.Key                  `json:"programId"`
	Accounts       []int                     `json:"accounts"`
	Keys           []transaction.AccountMeta `json:"keys"`
	Data           string                    `json:"data"`
}

func newView(cm *transaction.CompiledMessage) view {
	v := view{
		Header:          cm.Header,
		AccountKeys:     cm.AccountMetas(),
		RecentBlockhash: cm.RecentBlockhash,
		Instructions:    make([]instructionView, len(cm.Instructions)),
	}
	for i := range cm.Instructions {
		var (
			ci  = &cm.Instructions[i]
			ins = cm.Instruction(i)
		)
		acc := make([]int, len(ci.Accounts))
		for j, idx := range ci.Accounts {
			acc[j] = int(idx)
		}
		v.Instructions[i] = instructionView{
			ProgramIDIndex: ci.ProgramIDIndex,
			ProgramID:      ins.ProgramID,
			Accounts:       acc,
			Keys:           ins.Keys,
			Data:           hex.EncodeToString(ins.Data),
		}
	}
	return v
}
