// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: snapdish/v1/snapdish.proto

package snapdishv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Ingredient struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Unit          string                 `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
	Position      int32                  `protobuf:"varint,4,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ingredient) Reset() {
	*x = Ingredient{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ingredient) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ingredient) ProtoMessage() {}

func (x *Ingredient) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ingredient.ProtoReflect.Descriptor instead.
func (*Ingredient) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{0}
}

func (x *Ingredient) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Ingredient) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Ingredient) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *Ingredient) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type Direction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Position      int32                  `protobuf:"varint,2,opt,name=position,proto3" json:"position,omitempty"`
	IsListItem    bool                   `protobuf:"varint,3,opt,name=is_list_item,json=isListItem,proto3" json:"is_list_item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Direction) Reset() {
	*x = Direction{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Direction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Direction) ProtoMessage() {}

func (x *Direction) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Direction.ProtoReflect.Descriptor instead.
func (*Direction) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{1}
}

func (x *Direction) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Direction) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *Direction) GetIsListItem() bool {
	if x != nil {
		return x.IsListItem
	}
	return false
}

type Tag struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Color         string                 `protobuf:"bytes,2,opt,name=color,proto3" json:"color,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Tag) Reset() {
	*x = Tag{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Tag) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Tag) ProtoMessage() {}

func (x *Tag) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Tag.ProtoReflect.Descriptor instead.
func (*Tag) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{2}
}

func (x *Tag) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Tag) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

type Recipe struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title           string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description     string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Category        string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	PrepTimeMinutes int32                  `protobuf:"varint,5,opt,name=prep_time_minutes,json=prepTimeMinutes,proto3" json:"prep_time_minutes,omitempty"`
	CookTimeMinutes int32                  `protobuf:"varint,6,opt,name=cook_time_minutes,json=cookTimeMinutes,proto3" json:"cook_time_minutes,omitempty"`
	Servings        int32                  `protobuf:"varint,7,opt,name=servings,proto3" json:"servings,omitempty"`
	Source          string                 `protobuf:"bytes,8,opt,name=source,proto3" json:"source,omitempty"`
	Archived        bool                   `protobuf:"varint,9,opt,name=archived,proto3" json:"archived,omitempty"`
	Ingredients     []*Ingredient          `protobuf:"bytes,10,rep,name=ingredients,proto3" json:"ingredients,omitempty"`
	Directions      []*Direction           `protobuf:"bytes,11,rep,name=directions,proto3" json:"directions,omitempty"`
	Tags            []*Tag                 `protobuf:"bytes,12,rep,name=tags,proto3" json:"tags,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Recipe) Reset() {
	*x = Recipe{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Recipe) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Recipe) ProtoMessage() {}

func (x *Recipe) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Recipe.ProtoReflect.Descriptor instead.
func (*Recipe) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{3}
}

func (x *Recipe) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Recipe) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Recipe) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Recipe) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Recipe) GetPrepTimeMinutes() int32 {
	if x != nil {
		return x.PrepTimeMinutes
	}
	return 0
}

func (x *Recipe) GetCookTimeMinutes() int32 {
	if x != nil {
		return x.CookTimeMinutes
	}
	return 0
}

func (x *Recipe) GetServings() int32 {
	if x != nil {
		return x.Servings
	}
	return 0
}

func (x *Recipe) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Recipe) GetArchived() bool {
	if x != nil {
		return x.Archived
	}
	return false
}

func (x *Recipe) GetIngredients() []*Ingredient {
	if x != nil {
		return x.Ingredients
	}
	return nil
}

func (x *Recipe) GetDirections() []*Direction {
	if x != nil {
		return x.Directions
	}
	return nil
}

func (x *Recipe) GetTags() []*Tag {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Recipe) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Recipe) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CaptureRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageUri      string                 `protobuf:"bytes,1,opt,name=image_uri,json=imageUri,proto3" json:"image_uri,omitempty"`
	SkipPersist   bool                   `protobuf:"varint,2,opt,name=skip_persist,json=skipPersist,proto3" json:"skip_persist,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaptureRecipeRequest) Reset() {
	*x = CaptureRecipeRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaptureRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaptureRecipeRequest) ProtoMessage() {}

func (x *CaptureRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaptureRecipeRequest.ProtoReflect.Descriptor instead.
func (*CaptureRecipeRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{4}
}

func (x *CaptureRecipeRequest) GetImageUri() string {
	if x != nil {
		return x.ImageUri
	}
	return ""
}

func (x *CaptureRecipeRequest) GetSkipPersist() bool {
	if x != nil {
		return x.SkipPersist
	}
	return false
}

type CaptureRecipeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Recipe        *Recipe                `protobuf:"bytes,1,opt,name=recipe,proto3" json:"recipe,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaptureRecipeResponse) Reset() {
	*x = CaptureRecipeResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaptureRecipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaptureRecipeResponse) ProtoMessage() {}

func (x *CaptureRecipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaptureRecipeResponse.ProtoReflect.Descriptor instead.
func (*CaptureRecipeResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{5}
}

func (x *CaptureRecipeResponse) GetRecipe() *Recipe {
	if x != nil {
		return x.Recipe
	}
	return nil
}

type CaptureRecipeBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageUris     []string               `protobuf:"bytes,1,rep,name=image_uris,json=imageUris,proto3" json:"image_uris,omitempty"`
	SkipPersist   bool                   `protobuf:"varint,2,opt,name=skip_persist,json=skipPersist,proto3" json:"skip_persist,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaptureRecipeBatchRequest) Reset() {
	*x = CaptureRecipeBatchRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaptureRecipeBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaptureRecipeBatchRequest) ProtoMessage() {}

func (x *CaptureRecipeBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaptureRecipeBatchRequest.ProtoReflect.Descriptor instead.
func (*CaptureRecipeBatchRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{6}
}

func (x *CaptureRecipeBatchRequest) GetImageUris() []string {
	if x != nil {
		return x.ImageUris
	}
	return nil
}

func (x *CaptureRecipeBatchRequest) GetSkipPersist() bool {
	if x != nil {
		return x.SkipPersist
	}
	return false
}

type CaptureRecipeBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Recipes       []*Recipe              `protobuf:"bytes,1,rep,name=recipes,proto3" json:"recipes,omitempty"`
	Errors        []string               `protobuf:"bytes,2,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaptureRecipeBatchResponse) Reset() {
	*x = CaptureRecipeBatchResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaptureRecipeBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaptureRecipeBatchResponse) ProtoMessage() {}

func (x *CaptureRecipeBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaptureRecipeBatchResponse.ProtoReflect.Descriptor instead.
func (*CaptureRecipeBatchResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{7}
}

func (x *CaptureRecipeBatchResponse) GetRecipes() []*Recipe {
	if x != nil {
		return x.Recipes
	}
	return nil
}

func (x *CaptureRecipeBatchResponse) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

type EnqueueCaptureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageUri      string                 `protobuf:"bytes,1,opt,name=image_uri,json=imageUri,proto3" json:"image_uri,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueCaptureRequest) Reset() {
	*x = EnqueueCaptureRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueCaptureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueCaptureRequest) ProtoMessage() {}

func (x *EnqueueCaptureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueCaptureRequest.ProtoReflect.Descriptor instead.
func (*EnqueueCaptureRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{8}
}

func (x *EnqueueCaptureRequest) GetImageUri() string {
	if x != nil {
		return x.ImageUri
	}
	return ""
}

type EnqueueCaptureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueCaptureResponse) Reset() {
	*x = EnqueueCaptureResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueCaptureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueCaptureResponse) ProtoMessage() {}

func (x *EnqueueCaptureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueCaptureResponse.ProtoReflect.Descriptor instead.
func (*EnqueueCaptureResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{9}
}

func (x *EnqueueCaptureResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetDiagnosticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDiagnosticsRequest) Reset() {
	*x = GetDiagnosticsRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDiagnosticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDiagnosticsRequest) ProtoMessage() {}

func (x *GetDiagnosticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDiagnosticsRequest.ProtoReflect.Descriptor instead.
func (*GetDiagnosticsRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{10}
}

type GetDiagnosticsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	OcrConfidence     float32                `protobuf:"fixed32,1,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	ExtractionSource  string                 `protobuf:"bytes,2,opt,name=extraction_source,json=extractionSource,proto3" json:"extraction_source,omitempty"`
	ParsingConfidence float32                `protobuf:"fixed32,3,opt,name=parsing_confidence,json=parsingConfidence,proto3" json:"parsing_confidence,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetDiagnosticsResponse) Reset() {
	*x = GetDiagnosticsResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDiagnosticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDiagnosticsResponse) ProtoMessage() {}

func (x *GetDiagnosticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDiagnosticsResponse.ProtoReflect.Descriptor instead.
func (*GetDiagnosticsResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{11}
}

func (x *GetDiagnosticsResponse) GetOcrConfidence() float32 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *GetDiagnosticsResponse) GetExtractionSource() string {
	if x != nil {
		return x.ExtractionSource
	}
	return ""
}

func (x *GetDiagnosticsResponse) GetParsingConfidence() float32 {
	if x != nil {
		return x.ParsingConfidence
	}
	return 0
}

type GetRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipeId      string                 `protobuf:"bytes,1,opt,name=recipe_id,json=recipeId,proto3" json:"recipe_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRecipeRequest) Reset() {
	*x = GetRecipeRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecipeRequest) ProtoMessage() {}

func (x *GetRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRecipeRequest.ProtoReflect.Descriptor instead.
func (*GetRecipeRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{12}
}

func (x *GetRecipeRequest) GetRecipeId() string {
	if x != nil {
		return x.RecipeId
	}
	return ""
}

type GetRecipeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Recipe        *Recipe                `protobuf:"bytes,1,opt,name=recipe,proto3" json:"recipe,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRecipeResponse) Reset() {
	*x = GetRecipeResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecipeResponse) ProtoMessage() {}

func (x *GetRecipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRecipeResponse.ProtoReflect.Descriptor instead.
func (*GetRecipeResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{13}
}

func (x *GetRecipeResponse) GetRecipe() *Recipe {
	if x != nil {
		return x.Recipe
	}
	return nil
}

type ListRecipesRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	IncludeArchived bool                   `protobuf:"varint,1,opt,name=include_archived,json=includeArchived,proto3" json:"include_archived,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListRecipesRequest) Reset() {
	*x = ListRecipesRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecipesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecipesRequest) ProtoMessage() {}

func (x *ListRecipesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecipesRequest.ProtoReflect.Descriptor instead.
func (*ListRecipesRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{14}
}

func (x *ListRecipesRequest) GetIncludeArchived() bool {
	if x != nil {
		return x.IncludeArchived
	}
	return false
}

type ListRecipesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Recipes       []*Recipe              `protobuf:"bytes,1,rep,name=recipes,proto3" json:"recipes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecipesResponse) Reset() {
	*x = ListRecipesResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecipesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecipesResponse) ProtoMessage() {}

func (x *ListRecipesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecipesResponse.ProtoReflect.Descriptor instead.
func (*ListRecipesResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{15}
}

func (x *ListRecipesResponse) GetRecipes() []*Recipe {
	if x != nil {
		return x.Recipes
	}
	return nil
}

type ArchiveRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipeId      string                 `protobuf:"bytes,1,opt,name=recipe_id,json=recipeId,proto3" json:"recipe_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArchiveRecipeRequest) Reset() {
	*x = ArchiveRecipeRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArchiveRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArchiveRecipeRequest) ProtoMessage() {}

func (x *ArchiveRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArchiveRecipeRequest.ProtoReflect.Descriptor instead.
func (*ArchiveRecipeRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{16}
}

func (x *ArchiveRecipeRequest) GetRecipeId() string {
	if x != nil {
		return x.RecipeId
	}
	return ""
}

type ArchiveRecipeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArchiveRecipeResponse) Reset() {
	*x = ArchiveRecipeResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArchiveRecipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArchiveRecipeResponse) ProtoMessage() {}

func (x *ArchiveRecipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArchiveRecipeResponse.ProtoReflect.Descriptor instead.
func (*ArchiveRecipeResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{17}
}

type DeleteRecipeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipeId      string                 `protobuf:"bytes,1,opt,name=recipe_id,json=recipeId,proto3" json:"recipe_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRecipeRequest) Reset() {
	*x = DeleteRecipeRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRecipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRecipeRequest) ProtoMessage() {}

func (x *DeleteRecipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRecipeRequest.ProtoReflect.Descriptor instead.
func (*DeleteRecipeRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteRecipeRequest) GetRecipeId() string {
	if x != nil {
		return x.RecipeId
	}
	return ""
}

type DeleteRecipeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteRecipeResponse) Reset() {
	*x = DeleteRecipeResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRecipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRecipeResponse) ProtoMessage() {}

func (x *DeleteRecipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteRecipeResponse.ProtoReflect.Descriptor instead.
func (*DeleteRecipeResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{19}
}

type ExportRecipesRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	IncludeArchived bool                   `protobuf:"varint,1,opt,name=include_archived,json=includeArchived,proto3" json:"include_archived,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExportRecipesRequest) Reset() {
	*x = ExportRecipesRequest{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecipesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecipesRequest) ProtoMessage() {}

func (x *ExportRecipesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecipesRequest.ProtoReflect.Descriptor instead.
func (*ExportRecipesRequest) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{20}
}

func (x *ExportRecipesRequest) GetIncludeArchived() bool {
	if x != nil {
		return x.IncludeArchived
	}
	return false
}

type ExportRecipesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRecipesResponse) Reset() {
	*x = ExportRecipesResponse{}
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRecipesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRecipesResponse) ProtoMessage() {}

func (x *ExportRecipesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_snapdish_v1_snapdish_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRecipesResponse.ProtoReflect.Descriptor instead.
func (*ExportRecipesResponse) Descriptor() ([]byte, []int) {
	return file_snapdish_v1_snapdish_proto_rawDescGZIP(), []int{21}
}

func (x *ExportRecipesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_snapdish_v1_snapdish_proto protoreflect.FileDescriptor

const file_snapdish_v1_snapdish_proto_rawDesc = "" +
	"\n" +
	"\x1asnapdish/v1/snapdish.proto\x12\vsnapdish.v1\"h\n" +
	"\n" +
	"Ingredient\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\x12\x12\n" +
	"\x04unit\x18\x03 \x01(\tR\x04unit\x12\x1a\n" +
	"\bposition\x18\x04 \x01(\x05R\bposition\"]\n" +
	"\tDirection\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1a\n" +
	"\bposition\x18\x02 \x01(\x05R\bposition\x12 \n" +
	"\fis_list_item\x18\x03 \x01(\bR\n" +
	"isListItem\"/\n" +
	"\x03Tag\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05color\x18\x02 \x01(\tR\x05color\"\xeb\x03\n" +
	"\x06Recipe\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12*\n" +
	"\x11prep_time_minutes\x18\x05 \x01(\x05R\x0fprepTimeMinutes\x12*\n" +
	"\x11cook_time_minutes\x18\x06 \x01(\x05R\x0fcookTimeMinutes\x12\x1a\n" +
	"\bservings\x18\a \x01(\x05R\bservings\x12\x16\n" +
	"\x06source\x18\b \x01(\tR\x06source\x12\x1a\n" +
	"\barchived\x18\t \x01(\bR\barchived\x129\n" +
	"\vingredients\x18\n" +
	" \x03(\v2\x17.snapdish.v1.IngredientR\vingredients\x126\n" +
	"\n" +
	"directions\x18\v \x03(\v2\x16.snapdish.v1.DirectionR\n" +
	"directions\x12$\n" +
	"\x04tags\x18\f \x03(\v2\x10.snapdish.v1.TagR\x04tags\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"V\n" +
	"\x14CaptureRecipeRequest\x12\x1b\n" +
	"\timage_uri\x18\x01 \x01(\tR\bimageUri\x12!\n" +
	"\fskip_persist\x18\x02 \x01(\bR\vskipPersist\"D\n" +
	"\x15CaptureRecipeResponse\x12+\n" +
	"\x06recipe\x18\x01 \x01(\v2\x13.snapdish.v1.RecipeR\x06recipe\"]\n" +
	"\x19CaptureRecipeBatchRequest\x12\x1d\n" +
	"\n" +
	"image_uris\x18\x01 \x03(\tR\timageUris\x12!\n" +
	"\fskip_persist\x18\x02 \x01(\bR\vskipPersist\"c\n" +
	"\x1aCaptureRecipeBatchResponse\x12-\n" +
	"\arecipes\x18\x01 \x03(\v2\x13.snapdish.v1.RecipeR\arecipes\x12\x16\n" +
	"\x06errors\x18\x02 \x03(\tR\x06errors\"4\n" +
	"\x15EnqueueCaptureRequest\x12\x1b\n" +
	"\timage_uri\x18\x01 \x01(\tR\bimageUri\"/\n" +
	"\x16EnqueueCaptureResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x17\n" +
	"\x15GetDiagnosticsRequest\"\x9b\x01\n" +
	"\x16GetDiagnosticsResponse\x12%\n" +
	"\x0eocr_confidence\x18\x01 \x01(\x02R\rocrConfidence\x12+\n" +
	"\x11extraction_source\x18\x02 \x01(\tR\x10extractionSource\x12-\n" +
	"\x12parsing_confidence\x18\x03 \x01(\x02R\x11parsingConfidence\"/\n" +
	"\x10GetRecipeRequest\x12\x1b\n" +
	"\trecipe_id\x18\x01 \x01(\tR\brecipeId\"@\n" +
	"\x11GetRecipeResponse\x12+\n" +
	"\x06recipe\x18\x01 \x01(\v2\x13.snapdish.v1.RecipeR\x06recipe\"?\n" +
	"\x12ListRecipesRequest\x12)\n" +
	"\x10include_archived\x18\x01 \x01(\bR\x0fincludeArchived\"D\n" +
	"\x13ListRecipesResponse\x12-\n" +
	"\arecipes\x18\x01 \x03(\v2\x13.snapdish.v1.RecipeR\arecipes\"3\n" +
	"\x14ArchiveRecipeRequest\x12\x1b\n" +
	"\trecipe_id\x18\x01 \x01(\tR\brecipeId\"\x17\n" +
	"\x15ArchiveRecipeResponse\"2\n" +
	"\x13DeleteRecipeRequest\x12\x1b\n" +
	"\trecipe_id\x18\x01 \x01(\tR\brecipeId\"\x16\n" +
	"\x14DeleteRecipeResponse\"A\n" +
	"\x14ExportRecipesRequest\x12)\n" +
	"\x10include_archived\x18\x01 \x01(\bR\x0fincludeArchived\"+\n" +
	"\x15ExportRecipesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x85\x03\n" +
	"\x0eCaptureService\x12V\n" +
	"\rCaptureRecipe\x12!.snapdish.v1.CaptureRecipeRequest\x1a\".snapdish.v1.CaptureRecipeResponse\x12e\n" +
	"\x12CaptureRecipeBatch\x12&.snapdish.v1.CaptureRecipeBatchRequest\x1a'.snapdish.v1.CaptureRecipeBatchResponse\x12Y\n" +
	"\x0eEnqueueCapture\x12\".snapdish.v1.EnqueueCaptureRequest\x1a#.snapdish.v1.EnqueueCaptureResponse\x12Y\n" +
	"\x0eGetDiagnostics\x12\".snapdish.v1.GetDiagnosticsRequest\x1a#.snapdish.v1.GetDiagnosticsResponse2\xdb\x02\n" +
	"\x0eRecipesService\x12J\n" +
	"\tGetRecipe\x12\x1d.snapdish.v1.GetRecipeRequest\x1a\x1e.snapdish.v1.GetRecipeResponse\x12P\n" +
	"\vListRecipes\x12\x1f.snapdish.v1.ListRecipesRequest\x1a .snapdish.v1.ListRecipesResponse\x12V\n" +
	"\rArchiveRecipe\x12!.snapdish.v1.ArchiveRecipeRequest\x1a\".snapdish.v1.ArchiveRecipeResponse\x12S\n" +
	"\fDeleteRecipe\x12 .snapdish.v1.DeleteRecipeRequest\x1a!.snapdish.v1.DeleteRecipeResponse2g\n" +
	"\rExportService\x12V\n" +
	"\rExportRecipes\x12!.snapdish.v1.ExportRecipesRequest\x1a\".snapdish.v1.ExportRecipesResponseB?Z=github.com/snapdish/snapdish/gen/proto/snapdish/v1;snapdishv1b\x06proto3"

var (
	file_snapdish_v1_snapdish_proto_rawDescOnce sync.Once
	file_snapdish_v1_snapdish_proto_rawDescData []byte
)

func file_snapdish_v1_snapdish_proto_rawDescGZIP() []byte {
	file_snapdish_v1_snapdish_proto_rawDescOnce.Do(func() {
		file_snapdish_v1_snapdish_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_snapdish_v1_snapdish_proto_rawDesc), len(file_snapdish_v1_snapdish_proto_rawDesc)))
	})
	return file_snapdish_v1_snapdish_proto_rawDescData
}

var file_snapdish_v1_snapdish_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_snapdish_v1_snapdish_proto_goTypes = []any{
	(*Ingredient)(nil),                 // 0: snapdish.v1.Ingredient
	(*Direction)(nil),                  // 1: snapdish.v1.Direction
	(*Tag)(nil),                        // 2: snapdish.v1.Tag
	(*Recipe)(nil),                     // 3: snapdish.v1.Recipe
	(*CaptureRecipeRequest)(nil),       // 4: snapdish.v1.CaptureRecipeRequest
	(*CaptureRecipeResponse)(nil),      // 5: snapdish.v1.CaptureRecipeResponse
	(*CaptureRecipeBatchRequest)(nil),  // 6: snapdish.v1.CaptureRecipeBatchRequest
	(*CaptureRecipeBatchResponse)(nil), // 7: snapdish.v1.CaptureRecipeBatchResponse
	(*EnqueueCaptureRequest)(nil),      // 8: snapdish.v1.EnqueueCaptureRequest
	(*EnqueueCaptureResponse)(nil),     // 9: snapdish.v1.EnqueueCaptureResponse
	(*GetDiagnosticsRequest)(nil),      // 10: snapdish.v1.GetDiagnosticsRequest
	(*GetDiagnosticsResponse)(nil),     // 11: snapdish.v1.GetDiagnosticsResponse
	(*GetRecipeRequest)(nil),           // 12: snapdish.v1.GetRecipeRequest
	(*GetRecipeResponse)(nil),          // 13: snapdish.v1.GetRecipeResponse
	(*ListRecipesRequest)(nil),         // 14: snapdish.v1.ListRecipesRequest
	(*ListRecipesResponse)(nil),        // 15: snapdish.v1.ListRecipesResponse
	(*ArchiveRecipeRequest)(nil),       // 16: snapdish.v1.ArchiveRecipeRequest
	(*ArchiveRecipeResponse)(nil),      // 17: snapdish.v1.ArchiveRecipeResponse
	(*DeleteRecipeRequest)(nil),        // 18: snapdish.v1.DeleteRecipeRequest
	(*DeleteRecipeResponse)(nil),       // 19: snapdish.v1.DeleteRecipeResponse
	(*ExportRecipesRequest)(nil),       // 20: snapdish.v1.ExportRecipesRequest
	(*ExportRecipesResponse)(nil),      // 21: snapdish.v1.ExportRecipesResponse
}
var file_snapdish_v1_snapdish_proto_depIdxs = []int32{
	0,  // 0: snapdish.v1.Recipe.ingredients:type_name -> snapdish.v1.Ingredient
	1,  // 1: snapdish.v1.Recipe.directions:type_name -> snapdish.v1.Direction
	2,  // 2: snapdish.v1.Recipe.tags:type_name -> snapdish.v1.Tag
	3,  // 3: snapdish.v1.CaptureRecipeResponse.recipe:type_name -> snapdish.v1.Recipe
	3,  // 4: snapdish.v1.CaptureRecipeBatchResponse.recipes:type_name -> snapdish.v1.Recipe
	3,  // 5: snapdish.v1.GetRecipeResponse.recipe:type_name -> snapdish.v1.Recipe
	3,  // 6: snapdish.v1.ListRecipesResponse.recipes:type_name -> snapdish.v1.Recipe
	4,  // 7: snapdish.v1.CaptureService.CaptureRecipe:input_type -> snapdish.v1.CaptureRecipeRequest
	6,  // 8: snapdish.v1.CaptureService.CaptureRecipeBatch:input_type -> snapdish.v1.CaptureRecipeBatchRequest
	8,  // 9: snapdish.v1.CaptureService.EnqueueCapture:input_type -> snapdish.v1.EnqueueCaptureRequest
	10, // 10: snapdish.v1.CaptureService.GetDiagnostics:input_type -> snapdish.v1.GetDiagnosticsRequest
	12, // 11: snapdish.v1.RecipesService.GetRecipe:input_type -> snapdish.v1.GetRecipeRequest
	14, // 12: snapdish.v1.RecipesService.ListRecipes:input_type -> snapdish.v1.ListRecipesRequest
	16, // 13: snapdish.v1.RecipesService.ArchiveRecipe:input_type -> snapdish.v1.ArchiveRecipeRequest
	18, // 14: snapdish.v1.RecipesService.DeleteRecipe:input_type -> snapdish.v1.DeleteRecipeRequest
	20, // 15: snapdish.v1.ExportService.ExportRecipes:input_type -> snapdish.v1.ExportRecipesRequest
	5,  // 16: snapdish.v1.CaptureService.CaptureRecipe:output_type -> snapdish.v1.CaptureRecipeResponse
	7,  // 17: snapdish.v1.CaptureService.CaptureRecipeBatch:output_type -> snapdish.v1.CaptureRecipeBatchResponse
	9,  // 18: snapdish.v1.CaptureService.EnqueueCapture:output_type -> snapdish.v1.EnqueueCaptureResponse
	11, // 19: snapdish.v1.CaptureService.GetDiagnostics:output_type -> snapdish.v1.GetDiagnosticsResponse
	13, // 20: snapdish.v1.RecipesService.GetRecipe:output_type -> snapdish.v1.GetRecipeResponse
	15, // 21: snapdish.v1.RecipesService.ListRecipes:output_type -> snapdish.v1.ListRecipesResponse
	17, // 22: snapdish.v1.RecipesService.ArchiveRecipe:output_type -> snapdish.v1.ArchiveRecipeResponse
	19, // 23: snapdish.v1.RecipesService.DeleteRecipe:output_type -> snapdish.v1.DeleteRecipeResponse
	21, // 24: snapdish.v1.ExportService.ExportRecipes:output_type -> snapdish.v1.ExportRecipesResponse
	16, // [16:25] is the sub-list for method output_type
	7,  // [7:16] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_snapdish_v1_snapdish_proto_init() }
func file_snapdish_v1_snapdish_proto_init() {
	if File_snapdish_v1_snapdish_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_snapdish_v1_snapdish_proto_rawDesc), len(file_snapdish_v1_snapdish_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_snapdish_v1_snapdish_proto_goTypes,
		DependencyIndexes: file_snapdish_v1_snapdish_proto_depIdxs,
		MessageInfos:      file_snapdish_v1_snapdish_proto_msgTypes,
	}.Build()
	File_snapdish_v1_snapdish_proto = out.File
	file_snapdish_v1_snapdish_proto_goTypes = nil
	file_snapdish_v1_snapdish_proto_depIdxs = nil
}
