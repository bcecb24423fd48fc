// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"emergency", "non_emergency"}},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "category_type",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[2]},
			},
		},
	}
	// MediaColumns holds the columns for the "media" table.
	MediaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "file_name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "original_name", Type: field.TypeString, Size: 255},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "mime_type", Type: field.TypeString, Size: 100},
		{Name: "report_id", Type: field.TypeUUID, Nullable: true},
		{Name: "uploaded_by_id", Type: field.TypeUUID, Nullable: true},
	}
	// MediaTable holds the schema information for the "media" table.
	MediaTable = &schema.Table{
		Name:       "media",
		Columns:    MediaColumns,
		PrimaryKey: []*schema.Column{MediaColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "media_reports_images",
				Columns:    []*schema.Column{MediaColumns[7]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "media_users_uploaded_media",
				Columns:    []*schema.Column{MediaColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "media_report_id",
				Unique:  false,
				Columns: []*schema.Column{MediaColumns[7]},
			},
		},
	}
	// OfficersColumns holds the columns for the "officers" table.
	OfficersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "department", Type: field.TypeString, Size: 100},
		{Name: "contact", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// OfficersTable holds the schema information for the "officers" table.
	OfficersTable = &schema.Table{
		Name:       "officers",
		Columns:    OfficersColumns,
		PrimaryKey: []*schema.Column{OfficersColumns[0]},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"emergency", "non_emergency"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "resolved"}, Default: "pending"},
		{Name: "location_address", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "location_lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "location_lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "image_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "resolution_details", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category_id", Type: field.TypeUUID},
		{Name: "assigned_officer_id", Type: field.TypeUUID, Nullable: true},
		{Name: "subcategory_id", Type: field.TypeUUID, Nullable: true},
		{Name: "reporter_id", Type: field.TypeUUID},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_categories_reports",
				Columns:    []*schema.Column{ReportsColumns[12]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "reports_officers_assigned_reports",
				Columns:    []*schema.Column{ReportsColumns[13]},
				RefColumns: []*schema.Column{OfficersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "reports_subcategories_reports",
				Columns:    []*schema.Column{ReportsColumns[14]},
				RefColumns: []*schema.Column{SubcategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "reports_users_reports",
				Columns:    []*schema.Column{ReportsColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[6]},
			},
			{
				Name:    "report_type",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[5]},
			},
			{
				Name:    "report_category_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[12]},
			},
			{
				Name:    "report_reporter_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[15]},
			},
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
		},
	}
	// SubcategoriesColumns holds the columns for the "subcategories" table.
	SubcategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// SubcategoriesTable holds the schema information for the "subcategories" table.
	SubcategoriesTable = &schema.Table{
		Name:       "subcategories",
		Columns:    SubcategoriesColumns,
		PrimaryKey: []*schema.Column{SubcategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subcategories_categories_subcategories",
				Columns:    []*schema.Column{SubcategoriesColumns[2]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subcategory_category_id",
				Unique:  false,
				Columns: []*schema.Column{SubcategoriesColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"citizen", "admin"}, Default: "citizen"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		MediaTable,
		OfficersTable,
		ReportsTable,
		SubcategoriesTable,
		UsersTable,
	}
)

func init() {
	MediaTable.ForeignKeys[0].RefTable = ReportsTable
	MediaTable.ForeignKeys[1].RefTable = UsersTable
	ReportsTable.ForeignKeys[0].RefTable = CategoriesTable
	ReportsTable.ForeignKeys[1].RefTable = OfficersTable
	ReportsTable.ForeignKeys[2].RefTable = SubcategoriesTable
	ReportsTable.ForeignKeys[3].RefTable = UsersTable
	SubcategoriesTable.ForeignKeys[0].RefTable = CategoriesTable
}
