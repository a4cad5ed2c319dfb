package settings

import (
	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// TorrentBlackhole configures the folder-drop torrent client.
type TorrentBlackhole struct {
	TorrentFolder   string
	WatchFolder     string
	SaveMagnetFiles bool
	ReadOnly        bool
}

// NewTorrentBlackhole returns TorrentBlackhole settings with the stock
// defaults.
func NewTorrentBlackhole() TorrentBlackhole {
	return TorrentBlackhole{ReadOnly: true}
}

// TorrentBlackholeSchema exposes TorrentBlackhole settings.
var TorrentBlackholeSchema = clientschema.NewSchema(
	clientschema.String("TorrentFolder", func(s *TorrentBlackhole) *string { return &s.TorrentFolder }, clientschema.FieldMeta{
		Label:    "Torrent Folder",
		HelpText: "Folder in which Radarr will store the .torrent file",
		Order:    0,
		Type:     model.FieldTypePath,
	}),
	clientschema.String("WatchFolder", func(s *TorrentBlackhole) *string { return &s.WatchFolder }, clientschema.FieldMeta{
		Label:    "Watch Folder",
		HelpText: "Folder from which Radarr should import completed downloads",
		Order:    1,
		Type:     model.FieldTypePath,
	}),
	clientschema.Bool("SaveMagnetFiles", func(s *TorrentBlackhole) *bool { return &s.SaveMagnetFiles }, clientschema.FieldMeta{
		Label:    "Save Magnet Files",
		HelpText: "Save a .magnet file with the magnet link if no .torrent file is available",
		Order:    2,
		Advanced: true,
		Type:     model.FieldTypeCheckbox,
	}),
	clientschema.Bool("ReadOnly", func(s *TorrentBlackhole) *bool { return &s.ReadOnly }, clientschema.FieldMeta{
		Label:    "Read Only",
		HelpText: "Instead of moving files this will instruct Radarr to copy or hardlink",
		Order:    3,
		Advanced: true,
		Type:     model.FieldTypeCheckbox,
	}),
).WithDefaults(NewTorrentBlackhole)
