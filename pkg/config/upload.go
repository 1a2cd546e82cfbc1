package config

// UploadsConfig - куда складываются загруженные файлы импорта.
type UploadsConfig struct {
	Dir       string `yaml:"dir"`
	MaxSizeMB int64  `yaml:"max_size_mb"`
}

// UploadRule - правила для одного вида загрузки.
type UploadRule struct {
	AllowedExtensions []string
	AllowedMimeTypes  []string
	PathPrefix        string
}

const UploadEquipmentImport = "equipment_import"

var UploadRules = map[string]UploadRule{
	UploadEquipmentImport: {
		AllowedExtensions: []string{".xlsx"},
		AllowedMimeTypes: []string{
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"application/zip",
			"application/octet-stream",
		},
		PathPrefix: "imports",
	},
}
