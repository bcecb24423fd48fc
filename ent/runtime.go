// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicReportAPI/ent/category"
	"CivicReportAPI/ent/media"
	"CivicReportAPI/ent/officer"
	"CivicReportAPI/ent/report"
	"CivicReportAPI/ent/schema"
	"CivicReportAPI/ent/subcategory"
	"CivicReportAPI/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = func() func(string) error {
		validators := categoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	mediaMixin := schema.Media{}.Mixin()
	mediaMixinFields0 := mediaMixin[0].Fields()
	_ = mediaMixinFields0
	mediaFields := schema.Media{}.Fields()
	_ = mediaFields
	// mediaDescCreatedAt is the schema descriptor for created_at field.
	mediaDescCreatedAt := mediaMixinFields0[0].Descriptor()
	// media.DefaultCreatedAt holds the default value on creation for the created_at field.
	media.DefaultCreatedAt = mediaDescCreatedAt.Default.(func() time.Time)
	// mediaDescUpdatedAt is the schema descriptor for updated_at field.
	mediaDescUpdatedAt := mediaMixinFields0[1].Descriptor()
	// media.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	media.DefaultUpdatedAt = mediaDescUpdatedAt.Default.(func() time.Time)
	// media.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	media.UpdateDefaultUpdatedAt = mediaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mediaDescFileName is the schema descriptor for file_name field.
	mediaDescFileName := mediaFields[1].Descriptor()
	// media.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	media.FileNameValidator = func() func(string) error {
		validators := mediaDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mediaDescOriginalName is the schema descriptor for original_name field.
	mediaDescOriginalName := mediaFields[2].Descriptor()
	// media.OriginalNameValidator is a validator for the "original_name" field. It is called by the builders before save.
	media.OriginalNameValidator = func() func(string) error {
		validators := mediaDescOriginalName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(original_name string) error {
			for _, fn := range fns {
				if err := fn(original_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mediaDescFileSize is the schema descriptor for file_size field.
	mediaDescFileSize := mediaFields[3].Descriptor()
	// media.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	media.FileSizeValidator = mediaDescFileSize.Validators[0].(func(int64) error)
	// mediaDescMimeType is the schema descriptor for mime_type field.
	mediaDescMimeType := mediaFields[4].Descriptor()
	// media.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	media.MimeTypeValidator = func() func(string) error {
		validators := mediaDescMimeType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mime_type string) error {
			for _, fn := range fns {
				if err := fn(mime_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mediaDescID is the schema descriptor for id field.
	mediaDescID := mediaFields[0].Descriptor()
	// media.DefaultID holds the default value on creation for the id field.
	media.DefaultID = mediaDescID.Default.(func() uuid.UUID)
	officerFields := schema.Officer{}.Fields()
	_ = officerFields
	// officerDescName is the schema descriptor for name field.
	officerDescName := officerFields[1].Descriptor()
	// officer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	officer.NameValidator = func() func(string) error {
		validators := officerDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// officerDescDepartment is the schema descriptor for department field.
	officerDescDepartment := officerFields[2].Descriptor()
	// officer.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	officer.DepartmentValidator = func() func(string) error {
		validators := officerDescDepartment.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(department string) error {
			for _, fn := range fns {
				if err := fn(department); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// officerDescContact is the schema descriptor for contact field.
	officerDescContact := officerFields[3].Descriptor()
	// officer.ContactValidator is a validator for the "contact" field. It is called by the builders before save.
	officer.ContactValidator = officerDescContact.Validators[0].(func(string) error)
	// officerDescID is the schema descriptor for id field.
	officerDescID := officerFields[0].Descriptor()
	// officer.DefaultID holds the default value on creation for the id field.
	officer.DefaultID = officerDescID.Default.(func() uuid.UUID)
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields0[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportMixinFields0[1].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescTitle is the schema descriptor for title field.
	reportDescTitle := reportFields[1].Descriptor()
	// report.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	report.TitleValidator = func() func(string) error {
		validators := reportDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDescription is the schema descriptor for description field.
	reportDescDescription := reportFields[2].Descriptor()
	// report.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	report.DescriptionValidator = reportDescDescription.Validators[0].(func(string) error)
	// reportDescLocationAddress is the schema descriptor for location_address field.
	reportDescLocationAddress := reportFields[7].Descriptor()
	// report.LocationAddressValidator is a validator for the "location_address" field. It is called by the builders before save.
	report.LocationAddressValidator = reportDescLocationAddress.Validators[0].(func(string) error)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	subcategoryFields := schema.Subcategory{}.Fields()
	_ = subcategoryFields
	// subcategoryDescName is the schema descriptor for name field.
	subcategoryDescName := subcategoryFields[1].Descriptor()
	// subcategory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subcategory.NameValidator = func() func(string) error {
		validators := subcategoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// subcategoryDescID is the schema descriptor for id field.
	subcategoryDescID := subcategoryFields[0].Descriptor()
	// subcategory.DefaultID holds the default value on creation for the id field.
	subcategory.DefaultID = subcategoryDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
