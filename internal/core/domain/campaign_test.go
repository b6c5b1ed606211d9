package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetViews(t *testing.T) {
	c := Campaign{CampaignAmount: 100, RatePer1KViews: 4}
	assert.Equal(t, 25000.0, c.TargetViews())

	c = Campaign{CampaignAmount: 10, RatePer1KViews: 3}
	assert.InDelta(t, 3333.33, c.TargetViews(), 0.01)
}

func TestValidCampaignStatus(t *testing.T) {
	assert.True(t, ValidCampaignStatus(CampaignStatusDraft))
	assert.True(t, ValidCampaignStatus(CampaignStatusActive))
	assert.True(t, ValidCampaignStatus(CampaignStatusEnded))
	assert.True(t, ValidCampaignStatus(CampaignStatusCancelled))
	assert.False(t, ValidCampaignStatus("paused"))
	assert.False(t, ValidCampaignStatus(""))
}

func TestValidTxSignature(t *testing.T) {
	valid87 := "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQU"
	valid88 := valid87 + "W"
	assert.Len(t, valid87, 87)
	assert.True(t, ValidTxSignature(valid87))
	assert.True(t, ValidTxSignature(valid88))

	assert.False(t, ValidTxSignature(""))
	assert.False(t, ValidTxSignature("too-short"))
	assert.False(t, ValidTxSignature(valid88+"x"), "89 chars")
	assert.False(t, ValidTxSignature(valid87[:86]+"0"), "contains 0 which base58 excludes")
	assert.False(t, ValidTxSignature(valid87[:86]+"O"), "contains O which base58 excludes")
}
