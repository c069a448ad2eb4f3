package analysis

import "testing"

func TestChannelLabel(t *testing.T) {
	tests := []struct {
		ch   Channel
		want string
	}{
		{ChannelPetition, "청원"},
		{ChannelSinmungo, "국민신문고"},
		{ChannelSaeol, "새올행정"},
		{ChannelPortal, "공공포털"},
		{Channel("unknown"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			if got := tt.ch.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAllChannelsAreValid(t *testing.T) {
	if len(AllChannels) != 4 {
		t.Fatalf("expected 4 channels, got %d", len(AllChannels))
	}
	for _, ch := range AllChannels {
		if !ch.IsValid() {
			t.Errorf("channel %q should be valid", ch)
		}
	}
	if Channel("xyz").IsValid() {
		t.Errorf("unexpected valid channel")
	}
}
