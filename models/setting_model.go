package models

// Setting is a flat key/value row. The export job reads
// auto_excel_export and excel_export_schedule; the photo selection cap
// comes from max_photo_selections.
type Setting struct {
	SettingKey   string `gorm:"size:100;primary_key" json:"setting_key"`
	SettingValue string `gorm:"type:text;not null" json:"setting_value"`
}

func (Setting) TableName() string {
	return "settings"
}

const (
	SettingAutoExcelExport     = "auto_excel_export"
	SettingExcelExportSchedule = "excel_export_schedule"
	SettingMaxPhotoSelections  = "max_photo_selections"
)
