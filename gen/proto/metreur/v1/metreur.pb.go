// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: metreur/v1/metreur.proto

package metreurpb

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

type Survey struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Reference      string                 `protobuf:"bytes,2,opt,name=reference,proto3" json:"reference,omitempty"`
	ClientName     string                 `protobuf:"bytes,3,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	ClientAddress  string                 `protobuf:"bytes,4,opt,name=client_address,json=clientAddress,proto3" json:"client_address,omitempty"`
	ClientPhone    string                 `protobuf:"bytes,5,opt,name=client_phone,json=clientPhone,proto3" json:"client_phone,omitempty"`
	ClientEmail    string                 `protobuf:"bytes,6,opt,name=client_email,json=clientEmail,proto3" json:"client_email,omitempty"`
	SourceFilename string                 `protobuf:"bytes,7,opt,name=source_filename,json=sourceFilename,proto3" json:"source_filename,omitempty"`
	Confidence     float32                `protobuf:"fixed32,8,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Warnings       []string               `protobuf:"bytes,9,rep,name=warnings,proto3" json:"warnings,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Survey) Reset() {
	*x = Survey{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Survey) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Survey) ProtoMessage() {}

func (x *Survey) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Survey.ProtoReflect.Descriptor instead.
func (*Survey) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{0}
}

func (x *Survey) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Survey) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *Survey) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *Survey) GetClientAddress() string {
	if x != nil {
		return x.ClientAddress
	}
	return ""
}

func (x *Survey) GetClientPhone() string {
	if x != nil {
		return x.ClientPhone
	}
	return ""
}

func (x *Survey) GetClientEmail() string {
	if x != nil {
		return x.ClientEmail
	}
	return ""
}

func (x *Survey) GetSourceFilename() string {
	if x != nil {
		return x.SourceFilename
	}
	return ""
}

func (x *Survey) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Survey) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *Survey) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Survey) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type FixtureRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SurveyId      string                 `protobuf:"bytes,2,opt,name=survey_id,json=surveyId,proto3" json:"survey_id,omitempty"`
	Repere        string                 `protobuf:"bytes,3,opt,name=repere,proto3" json:"repere,omitempty"`
	Title         string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Position      int32                  `protobuf:"varint,5,opt,name=position,proto3" json:"position,omitempty"`
	OriginalData  string                 `protobuf:"bytes,6,opt,name=original_data,json=originalData,proto3" json:"original_data,omitempty"` // JSON object
	ModifiedData  string                 `protobuf:"bytes,7,opt,name=modified_data,json=modifiedData,proto3" json:"modified_data,omitempty"` // JSON object, empty until first edit
	Deviations    []*Deviation           `protobuf:"bytes,8,rep,name=deviations,proto3" json:"deviations,omitempty"`
	IsValidated   bool                   `protobuf:"varint,9,opt,name=is_validated,json=isValidated,proto3" json:"is_validated,omitempty"`
	ValidatedAt   string                 `protobuf:"bytes,10,opt,name=validated_at,json=validatedAt,proto3" json:"validated_at,omitempty"`
	Status        string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FixtureRecord) Reset() {
	*x = FixtureRecord{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FixtureRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FixtureRecord) ProtoMessage() {}

func (x *FixtureRecord) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FixtureRecord.ProtoReflect.Descriptor instead.
func (*FixtureRecord) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{1}
}

func (x *FixtureRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FixtureRecord) GetSurveyId() string {
	if x != nil {
		return x.SurveyId
	}
	return ""
}

func (x *FixtureRecord) GetRepere() string {
	if x != nil {
		return x.Repere
	}
	return ""
}

func (x *FixtureRecord) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *FixtureRecord) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *FixtureRecord) GetOriginalData() string {
	if x != nil {
		return x.OriginalData
	}
	return ""
}

func (x *FixtureRecord) GetModifiedData() string {
	if x != nil {
		return x.ModifiedData
	}
	return ""
}

func (x *FixtureRecord) GetDeviations() []*Deviation {
	if x != nil {
		return x.Deviations
	}
	return nil
}

func (x *FixtureRecord) GetIsValidated() bool {
	if x != nil {
		return x.IsValidated
	}
	return false
}

func (x *FixtureRecord) GetValidatedAt() string {
	if x != nil {
		return x.ValidatedAt
	}
	return ""
}

func (x *FixtureRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *FixtureRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *FixtureRecord) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Deviation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	Original      string                 `protobuf:"bytes,2,opt,name=original,proto3" json:"original,omitempty"`
	Modified      string                 `protobuf:"bytes,3,opt,name=modified,proto3" json:"modified,omitempty"`
	Difference    float64                `protobuf:"fixed64,4,opt,name=difference,proto3" json:"difference,omitempty"`
	HasDifference bool                   `protobuf:"varint,5,opt,name=has_difference,json=hasDifference,proto3" json:"has_difference,omitempty"`
	Percentage    float64                `protobuf:"fixed64,6,opt,name=percentage,proto3" json:"percentage,omitempty"`
	HasPercentage bool                   `protobuf:"varint,7,opt,name=has_percentage,json=hasPercentage,proto3" json:"has_percentage,omitempty"`
	Severity      string                 `protobuf:"bytes,8,opt,name=severity,proto3" json:"severity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Deviation) Reset() {
	*x = Deviation{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Deviation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Deviation) ProtoMessage() {}

func (x *Deviation) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Deviation.ProtoReflect.Descriptor instead.
func (*Deviation) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{2}
}

func (x *Deviation) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *Deviation) GetOriginal() string {
	if x != nil {
		return x.Original
	}
	return ""
}

func (x *Deviation) GetModified() string {
	if x != nil {
		return x.Modified
	}
	return ""
}

func (x *Deviation) GetDifference() float64 {
	if x != nil {
		return x.Difference
	}
	return 0
}

func (x *Deviation) GetHasDifference() bool {
	if x != nil {
		return x.HasDifference
	}
	return false
}

func (x *Deviation) GetPercentage() float64 {
	if x != nil {
		return x.Percentage
	}
	return 0
}

func (x *Deviation) GetHasPercentage() bool {
	if x != nil {
		return x.HasPercentage
	}
	return false
}

func (x *Deviation) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

type RecordFailure struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Field         string                 `protobuf:"bytes,2,opt,name=field,proto3" json:"field,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordFailure) Reset() {
	*x = RecordFailure{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordFailure) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordFailure) ProtoMessage() {}

func (x *RecordFailure) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordFailure.ProtoReflect.Descriptor instead.
func (*RecordFailure) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{3}
}

func (x *RecordFailure) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *RecordFailure) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *RecordFailure) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ExtractSurveyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reference     string                 `protobuf:"bytes,1,opt,name=reference,proto3" json:"reference,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractSurveyRequest) Reset() {
	*x = ExtractSurveyRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractSurveyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractSurveyRequest) ProtoMessage() {}

func (x *ExtractSurveyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractSurveyRequest.ProtoReflect.Descriptor instead.
func (*ExtractSurveyRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractSurveyRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *ExtractSurveyRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractSurveyRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ExtractSurveyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Survey        *Survey                `protobuf:"bytes,1,opt,name=survey,proto3" json:"survey,omitempty"`
	Fixtures      []*FixtureRecord       `protobuf:"bytes,2,rep,name=fixtures,proto3" json:"fixtures,omitempty"`
	Failures      []*RecordFailure       `protobuf:"bytes,3,rep,name=failures,proto3" json:"failures,omitempty"`
	RetryCount    int32                  `protobuf:"varint,4,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	ModelName     string                 `protobuf:"bytes,5,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	TokensUsed    int32                  `protobuf:"varint,6,opt,name=tokens_used,json=tokensUsed,proto3" json:"tokens_used,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractSurveyResponse) Reset() {
	*x = ExtractSurveyResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractSurveyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractSurveyResponse) ProtoMessage() {}

func (x *ExtractSurveyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractSurveyResponse.ProtoReflect.Descriptor instead.
func (*ExtractSurveyResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractSurveyResponse) GetSurvey() *Survey {
	if x != nil {
		return x.Survey
	}
	return nil
}

func (x *ExtractSurveyResponse) GetFixtures() []*FixtureRecord {
	if x != nil {
		return x.Fixtures
	}
	return nil
}

func (x *ExtractSurveyResponse) GetFailures() []*RecordFailure {
	if x != nil {
		return x.Failures
	}
	return nil
}

func (x *ExtractSurveyResponse) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *ExtractSurveyResponse) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *ExtractSurveyResponse) GetTokensUsed() int32 {
	if x != nil {
		return x.TokensUsed
	}
	return 0
}

type GetSurveyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SurveyId      string                 `protobuf:"bytes,1,opt,name=survey_id,json=surveyId,proto3" json:"survey_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSurveyRequest) Reset() {
	*x = GetSurveyRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSurveyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSurveyRequest) ProtoMessage() {}

func (x *GetSurveyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSurveyRequest.ProtoReflect.Descriptor instead.
func (*GetSurveyRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{6}
}

func (x *GetSurveyRequest) GetSurveyId() string {
	if x != nil {
		return x.SurveyId
	}
	return ""
}

type GetSurveyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Survey        *Survey                `protobuf:"bytes,1,opt,name=survey,proto3" json:"survey,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSurveyResponse) Reset() {
	*x = GetSurveyResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSurveyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSurveyResponse) ProtoMessage() {}

func (x *GetSurveyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSurveyResponse.ProtoReflect.Descriptor instead.
func (*GetSurveyResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{7}
}

func (x *GetSurveyResponse) GetSurvey() *Survey {
	if x != nil {
		return x.Survey
	}
	return nil
}

type ListSurveysRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSurveysRequest) Reset() {
	*x = ListSurveysRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSurveysRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSurveysRequest) ProtoMessage() {}

func (x *ListSurveysRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSurveysRequest.ProtoReflect.Descriptor instead.
func (*ListSurveysRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{8}
}

type ListSurveysResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Surveys       []*Survey              `protobuf:"bytes,1,rep,name=surveys,proto3" json:"surveys,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSurveysResponse) Reset() {
	*x = ListSurveysResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSurveysResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSurveysResponse) ProtoMessage() {}

func (x *ListSurveysResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSurveysResponse.ProtoReflect.Descriptor instead.
func (*ListSurveysResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{9}
}

func (x *ListSurveysResponse) GetSurveys() []*Survey {
	if x != nil {
		return x.Surveys
	}
	return nil
}

type ListFixturesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SurveyId      string                 `protobuf:"bytes,1,opt,name=survey_id,json=surveyId,proto3" json:"survey_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFixturesRequest) Reset() {
	*x = ListFixturesRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFixturesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFixturesRequest) ProtoMessage() {}

func (x *ListFixturesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFixturesRequest.ProtoReflect.Descriptor instead.
func (*ListFixturesRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{10}
}

func (x *ListFixturesRequest) GetSurveyId() string {
	if x != nil {
		return x.SurveyId
	}
	return ""
}

type ListFixturesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fixtures      []*FixtureRecord       `protobuf:"bytes,1,rep,name=fixtures,proto3" json:"fixtures,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFixturesResponse) Reset() {
	*x = ListFixturesResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFixturesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFixturesResponse) ProtoMessage() {}

func (x *ListFixturesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFixturesResponse.ProtoReflect.Descriptor instead.
func (*ListFixturesResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{11}
}

func (x *ListFixturesResponse) GetFixtures() []*FixtureRecord {
	if x != nil {
		return x.Fixtures
	}
	return nil
}

type UpdateFixtureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      string                 `protobuf:"bytes,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	Modifications string                 `protobuf:"bytes,2,opt,name=modifications,proto3" json:"modifications,omitempty"` // JSON object of field -> value
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFixtureRequest) Reset() {
	*x = UpdateFixtureRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFixtureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFixtureRequest) ProtoMessage() {}

func (x *UpdateFixtureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFixtureRequest.ProtoReflect.Descriptor instead.
func (*UpdateFixtureRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateFixtureRequest) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

func (x *UpdateFixtureRequest) GetModifications() string {
	if x != nil {
		return x.Modifications
	}
	return ""
}

type UpdateFixtureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fixture       *FixtureRecord         `protobuf:"bytes,1,opt,name=fixture,proto3" json:"fixture,omitempty"`
	Alerts        []*Deviation           `protobuf:"bytes,2,rep,name=alerts,proto3" json:"alerts,omitempty"` // high-severity deviations only
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFixtureResponse) Reset() {
	*x = UpdateFixtureResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFixtureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFixtureResponse) ProtoMessage() {}

func (x *UpdateFixtureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFixtureResponse.ProtoReflect.Descriptor instead.
func (*UpdateFixtureResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateFixtureResponse) GetFixture() *FixtureRecord {
	if x != nil {
		return x.Fixture
	}
	return nil
}

func (x *UpdateFixtureResponse) GetAlerts() []*Deviation {
	if x != nil {
		return x.Alerts
	}
	return nil
}

type ValidateFixtureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      string                 `protobuf:"bytes,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateFixtureRequest) Reset() {
	*x = ValidateFixtureRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateFixtureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateFixtureRequest) ProtoMessage() {}

func (x *ValidateFixtureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateFixtureRequest.ProtoReflect.Descriptor instead.
func (*ValidateFixtureRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{14}
}

func (x *ValidateFixtureRequest) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

type ValidateFixtureResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fixture       *FixtureRecord         `protobuf:"bytes,1,opt,name=fixture,proto3" json:"fixture,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateFixtureResponse) Reset() {
	*x = ValidateFixtureResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateFixtureResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateFixtureResponse) ProtoMessage() {}

func (x *ValidateFixtureResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateFixtureResponse.ProtoReflect.Descriptor instead.
func (*ValidateFixtureResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{15}
}

func (x *ValidateFixtureResponse) GetFixture() *FixtureRecord {
	if x != nil {
		return x.Fixture
	}
	return nil
}

type PlanDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SurveyId      string                 `protobuf:"bytes,1,opt,name=survey_id,json=surveyId,proto3" json:"survey_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanDocumentsRequest) Reset() {
	*x = PlanDocumentsRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanDocumentsRequest) ProtoMessage() {}

func (x *PlanDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanDocumentsRequest.ProtoReflect.Descriptor instead.
func (*PlanDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{16}
}

func (x *PlanDocumentsRequest) GetSurveyId() string {
	if x != nil {
		return x.SurveyId
	}
	return ""
}

type DocumentBatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      string                 `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	Fallback      bool                   `protobuf:"varint,2,opt,name=fallback,proto3" json:"fallback,omitempty"`
	Records       []*FixtureRecord       `protobuf:"bytes,3,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentBatch) Reset() {
	*x = DocumentBatch{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentBatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentBatch) ProtoMessage() {}

func (x *DocumentBatch) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentBatch.ProtoReflect.Descriptor instead.
func (*DocumentBatch) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{17}
}

func (x *DocumentBatch) GetTemplate() string {
	if x != nil {
		return x.Template
	}
	return ""
}

func (x *DocumentBatch) GetFallback() bool {
	if x != nil {
		return x.Fallback
	}
	return false
}

func (x *DocumentBatch) GetRecords() []*FixtureRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type PlanDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batches       []*DocumentBatch       `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanDocumentsResponse) Reset() {
	*x = PlanDocumentsResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanDocumentsResponse) ProtoMessage() {}

func (x *PlanDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanDocumentsResponse.ProtoReflect.Descriptor instead.
func (*PlanDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{18}
}

func (x *PlanDocumentsResponse) GetBatches() []*DocumentBatch {
	if x != nil {
		return x.Batches
	}
	return nil
}

type ExportSurveyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SurveyId      string                 `protobuf:"bytes,1,opt,name=survey_id,json=surveyId,proto3" json:"survey_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSurveyRequest) Reset() {
	*x = ExportSurveyRequest{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSurveyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSurveyRequest) ProtoMessage() {}

func (x *ExportSurveyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSurveyRequest.ProtoReflect.Descriptor instead.
func (*ExportSurveyRequest) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{19}
}

func (x *ExportSurveyRequest) GetSurveyId() string {
	if x != nil {
		return x.SurveyId
	}
	return ""
}

type ExportSurveyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSurveyResponse) Reset() {
	*x = ExportSurveyResponse{}
	mi := &file_metreur_v1_metreur_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSurveyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSurveyResponse) ProtoMessage() {}

func (x *ExportSurveyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_metreur_v1_metreur_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSurveyResponse.ProtoReflect.Descriptor instead.
func (*ExportSurveyResponse) Descriptor() ([]byte, []int) {
	return file_metreur_v1_metreur_proto_rawDescGZIP(), []int{20}
}

func (x *ExportSurveyResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportSurveyResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_metreur_v1_metreur_proto protoreflect.FileDescriptor

const file_metreur_v1_metreur_proto_rawDesc = "" +
	"\n" +
	"\x18metreur/v1/metreur.proto\x12\n" +
	"metreur.v1\"\xe7\x02\n" +
	"\x06Survey\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1c\n" +
	"\treference\x18\x02 \x01(\tR\treference\x12\x1f\n" +
	"\vclient_name\x18\x03 \x01(\tR\n" +
	"clientName\x12%\n" +
	"\x0eclient_address\x18\x04 \x01(\tR\rclientAddress\x12!\n" +
	"\fclient_phone\x18\x05 \x01(\tR\vclientPhone\x12!\n" +
	"\fclient_email\x18\x06 \x01(\tR\vclientEmail\x12'\n" +
	"\x0fsource_filename\x18\a \x01(\tR\x0esourceFilename\x12\x1e\n" +
	"\n" +
	"confidence\x18\b \x01(\x02R\n" +
	"confidence\x12\x1a\n" +
	"\bwarnings\x18\t \x03(\tR\bwarnings\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xa3\x03\n" +
	"\rFixtureRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tsurvey_id\x18\x02 \x01(\tR\bsurveyId\x12\x16\n" +
	"\x06repere\x18\x03 \x01(\tR\x06repere\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x1a\n" +
	"\bposition\x18\x05 \x01(\x05R\bposition\x12#\n" +
	"\roriginal_data\x18\x06 \x01(\tR\foriginalData\x12#\n" +
	"\rmodified_data\x18\a \x01(\tR\fmodifiedData\x125\n" +
	"\n" +
	"deviations\x18\b \x03(\v2\x15.metreur.v1.DeviationR\n" +
	"deviations\x12!\n" +
	"\fis_validated\x18\t \x01(\bR\visValidated\x12!\n" +
	"\fvalidated_at\x18\n" +
	" \x01(\tR\vvalidatedAt\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"\x83\x02\n" +
	"\tDeviation\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x1a\n" +
	"\boriginal\x18\x02 \x01(\tR\boriginal\x12\x1a\n" +
	"\bmodified\x18\x03 \x01(\tR\bmodified\x12\x1e\n" +
	"\n" +
	"difference\x18\x04 \x01(\x01R\n" +
	"difference\x12%\n" +
	"\x0ehas_difference\x18\x05 \x01(\bR\rhasDifference\x12\x1e\n" +
	"\n" +
	"percentage\x18\x06 \x01(\x01R\n" +
	"percentage\x12%\n" +
	"\x0ehas_percentage\x18\a \x01(\bR\rhasPercentage\x12\x1a\n" +
	"\bseverity\x18\b \x01(\tR\bseverity\"U\n" +
	"\rRecordFailure\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x12\x14\n" +
	"\x05field\x18\x02 \x01(\tR\x05field\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"j\n" +
	"\x14ExtractSurveyRequest\x12\x1c\n" +
	"\treference\x18\x01 \x01(\tR\treference\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"\x92\x02\n" +
	"\x15ExtractSurveyResponse\x12*\n" +
	"\x06survey\x18\x01 \x01(\v2\x12.metreur.v1.SurveyR\x06survey\x125\n" +
	"\bfixtures\x18\x02 \x03(\v2\x19.metreur.v1.FixtureRecordR\bfixtures\x125\n" +
	"\bfailures\x18\x03 \x03(\v2\x19.metreur.v1.RecordFailureR\bfailures\x12\x1f\n" +
	"\vretry_count\x18\x04 \x01(\x05R\n" +
	"retryCount\x12\x1d\n" +
	"\n" +
	"model_name\x18\x05 \x01(\tR\tmodelName\x12\x1f\n" +
	"\vtokens_used\x18\x06 \x01(\x05R\n" +
	"tokensUsed\"/\n" +
	"\x10GetSurveyRequest\x12\x1b\n" +
	"\tsurvey_id\x18\x01 \x01(\tR\bsurveyId\"?\n" +
	"\x11GetSurveyResponse\x12*\n" +
	"\x06survey\x18\x01 \x01(\v2\x12.metreur.v1.SurveyR\x06survey\"\x14\n" +
	"\x12ListSurveysRequest\"C\n" +
	"\x13ListSurveysResponse\x12,\n" +
	"\asurveys\x18\x01 \x03(\v2\x12.metreur.v1.SurveyR\asurveys\"2\n" +
	"\x13ListFixturesRequest\x12\x1b\n" +
	"\tsurvey_id\x18\x01 \x01(\tR\bsurveyId\"M\n" +
	"\x14ListFixturesResponse\x125\n" +
	"\bfixtures\x18\x01 \x03(\v2\x19.metreur.v1.FixtureRecordR\bfixtures\"Y\n" +
	"\x14UpdateFixtureRequest\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\tR\brecordId\x12$\n" +
	"\rmodifications\x18\x02 \x01(\tR\rmodifications\"{\n" +
	"\x15UpdateFixtureResponse\x123\n" +
	"\afixture\x18\x01 \x01(\v2\x19.metreur.v1.FixtureRecordR\afixture\x12-\n" +
	"\x06alerts\x18\x02 \x03(\v2\x15.metreur.v1.DeviationR\x06alerts\"5\n" +
	"\x16ValidateFixtureRequest\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\tR\brecordId\"N\n" +
	"\x17ValidateFixtureResponse\x123\n" +
	"\afixture\x18\x01 \x01(\v2\x19.metreur.v1.FixtureRecordR\afixture\"3\n" +
	"\x14PlanDocumentsRequest\x12\x1b\n" +
	"\tsurvey_id\x18\x01 \x01(\tR\bsurveyId\"|\n" +
	"\rDocumentBatch\x12\x1a\n" +
	"\btemplate\x18\x01 \x01(\tR\btemplate\x12\x1a\n" +
	"\bfallback\x18\x02 \x01(\bR\bfallback\x123\n" +
	"\arecords\x18\x03 \x03(\v2\x19.metreur.v1.FixtureRecordR\arecords\"L\n" +
	"\x15PlanDocumentsResponse\x123\n" +
	"\abatches\x18\x01 \x03(\v2\x19.metreur.v1.DocumentBatchR\abatches\"2\n" +
	"\x13ExportSurveyRequest\x12\x1b\n" +
	"\tsurvey_id\x18\x01 \x01(\tR\bsurveyId\"F\n" +
	"\x14ExportSurveyResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xff\x01\n" +
	"\rSurveyService\x12T\n" +
	"\rExtractSurvey\x12 .metreur.v1.ExtractSurveyRequest\x1a!.metreur.v1.ExtractSurveyResponse\x12H\n" +
	"\tGetSurvey\x12\x1c.metreur.v1.GetSurveyRequest\x1a\x1d.metreur.v1.GetSurveyResponse\x12N\n" +
	"\vListSurveys\x12\x1e.metreur.v1.ListSurveysRequest\x1a\x1f.metreur.v1.ListSurveysResponse2\x95\x02\n" +
	"\x0eFixtureService\x12Q\n" +
	"\fListFixtures\x12\x1f.metreur.v1.ListFixturesRequest\x1a .metreur.v1.ListFixturesResponse\x12T\n" +
	"\rUpdateFixture\x12 .metreur.v1.UpdateFixtureRequest\x1a!.metreur.v1.UpdateFixtureResponse\x12Z\n" +
	"\x0fValidateFixture\x12\".metreur.v1.ValidateFixtureRequest\x1a#.metreur.v1.ValidateFixtureResponse2\xba\x01\n" +
	"\x0fDocumentService\x12T\n" +
	"\rPlanDocuments\x12 .metreur.v1.PlanDocumentsRequest\x1a!.metreur.v1.PlanDocumentsResponse\x12Q\n" +
	"\fExportSurvey\x12\x1f.metreur.v1.ExportSurveyRequest\x1a .metreur.v1.ExportSurveyResponseBDZBgithub.com/avalette/metreur-tracker/gen/proto/metreur/v1;metreurpbb\x06proto3"

var (
	file_metreur_v1_metreur_proto_rawDescOnce sync.Once
	file_metreur_v1_metreur_proto_rawDescData []byte
)

func file_metreur_v1_metreur_proto_rawDescGZIP() []byte {
	file_metreur_v1_metreur_proto_rawDescOnce.Do(func() {
		file_metreur_v1_metreur_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_metreur_v1_metreur_proto_rawDesc), len(file_metreur_v1_metreur_proto_rawDesc)))
	})
	return file_metreur_v1_metreur_proto_rawDescData
}

var file_metreur_v1_metreur_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_metreur_v1_metreur_proto_goTypes = []any{
	(*Survey)(nil),                  // 0: metreur.v1.Survey
	(*FixtureRecord)(nil),           // 1: metreur.v1.FixtureRecord
	(*Deviation)(nil),               // 2: metreur.v1.Deviation
	(*RecordFailure)(nil),           // 3: metreur.v1.RecordFailure
	(*ExtractSurveyRequest)(nil),    // 4: metreur.v1.ExtractSurveyRequest
	(*ExtractSurveyResponse)(nil),   // 5: metreur.v1.ExtractSurveyResponse
	(*GetSurveyRequest)(nil),        // 6: metreur.v1.GetSurveyRequest
	(*GetSurveyResponse)(nil),       // 7: metreur.v1.GetSurveyResponse
	(*ListSurveysRequest)(nil),      // 8: metreur.v1.ListSurveysRequest
	(*ListSurveysResponse)(nil),     // 9: metreur.v1.ListSurveysResponse
	(*ListFixturesRequest)(nil),     // 10: metreur.v1.ListFixturesRequest
	(*ListFixturesResponse)(nil),    // 11: metreur.v1.ListFixturesResponse
	(*UpdateFixtureRequest)(nil),    // 12: metreur.v1.UpdateFixtureRequest
	(*UpdateFixtureResponse)(nil),   // 13: metreur.v1.UpdateFixtureResponse
	(*ValidateFixtureRequest)(nil),  // 14: metreur.v1.ValidateFixtureRequest
	(*ValidateFixtureResponse)(nil), // 15: metreur.v1.ValidateFixtureResponse
	(*PlanDocumentsRequest)(nil),    // 16: metreur.v1.PlanDocumentsRequest
	(*DocumentBatch)(nil),           // 17: metreur.v1.DocumentBatch
	(*PlanDocumentsResponse)(nil),   // 18: metreur.v1.PlanDocumentsResponse
	(*ExportSurveyRequest)(nil),     // 19: metreur.v1.ExportSurveyRequest
	(*ExportSurveyResponse)(nil),    // 20: metreur.v1.ExportSurveyResponse
}
var file_metreur_v1_metreur_proto_depIdxs = []int32{
	2,  // 0: metreur.v1.FixtureRecord.deviations:type_name -> metreur.v1.Deviation
	0,  // 1: metreur.v1.ExtractSurveyResponse.survey:type_name -> metreur.v1.Survey
	1,  // 2: metreur.v1.ExtractSurveyResponse.fixtures:type_name -> metreur.v1.FixtureRecord
	3,  // 3: metreur.v1.ExtractSurveyResponse.failures:type_name -> metreur.v1.RecordFailure
	0,  // 4: metreur.v1.GetSurveyResponse.survey:type_name -> metreur.v1.Survey
	0,  // 5: metreur.v1.ListSurveysResponse.surveys:type_name -> metreur.v1.Survey
	1,  // 6: metreur.v1.ListFixturesResponse.fixtures:type_name -> metreur.v1.FixtureRecord
	1,  // 7: metreur.v1.UpdateFixtureResponse.fixture:type_name -> metreur.v1.FixtureRecord
	2,  // 8: metreur.v1.UpdateFixtureResponse.alerts:type_name -> metreur.v1.Deviation
	1,  // 9: metreur.v1.ValidateFixtureResponse.fixture:type_name -> metreur.v1.FixtureRecord
	1,  // 10: metreur.v1.DocumentBatch.records:type_name -> metreur.v1.FixtureRecord
	17, // 11: metreur.v1.PlanDocumentsResponse.batches:type_name -> metreur.v1.DocumentBatch
	4,  // 12: metreur.v1.SurveyService.ExtractSurvey:input_type -> metreur.v1.ExtractSurveyRequest
	6,  // 13: metreur.v1.SurveyService.GetSurvey:input_type -> metreur.v1.GetSurveyRequest
	8,  // 14: metreur.v1.SurveyService.ListSurveys:input_type -> metreur.v1.ListSurveysRequest
	10, // 15: metreur.v1.FixtureService.ListFixtures:input_type -> metreur.v1.ListFixturesRequest
	12, // 16: metreur.v1.FixtureService.UpdateFixture:input_type -> metreur.v1.UpdateFixtureRequest
	14, // 17: metreur.v1.FixtureService.ValidateFixture:input_type -> metreur.v1.ValidateFixtureRequest
	16, // 18: metreur.v1.DocumentService.PlanDocuments:input_type -> metreur.v1.PlanDocumentsRequest
	19, // 19: metreur.v1.DocumentService.ExportSurvey:input_type -> metreur.v1.ExportSurveyRequest
	5,  // 20: metreur.v1.SurveyService.ExtractSurvey:output_type -> metreur.v1.ExtractSurveyResponse
	7,  // 21: metreur.v1.SurveyService.GetSurvey:output_type -> metreur.v1.GetSurveyResponse
	9,  // 22: metreur.v1.SurveyService.ListSurveys:output_type -> metreur.v1.ListSurveysResponse
	11, // 23: metreur.v1.FixtureService.ListFixtures:output_type -> metreur.v1.ListFixturesResponse
	13, // 24: metreur.v1.FixtureService.UpdateFixture:output_type -> metreur.v1.UpdateFixtureResponse
	15, // 25: metreur.v1.FixtureService.ValidateFixture:output_type -> metreur.v1.ValidateFixtureResponse
	18, // 26: metreur.v1.DocumentService.PlanDocuments:output_type -> metreur.v1.PlanDocumentsResponse
	20, // 27: metreur.v1.DocumentService.ExportSurvey:output_type -> metreur.v1.ExportSurveyResponse
	20, // [20:28] is the sub-list for method output_type
	12, // [12:20] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_metreur_v1_metreur_proto_init() }
func file_metreur_v1_metreur_proto_init() {
	if File_metreur_v1_metreur_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_metreur_v1_metreur_proto_rawDesc), len(file_metreur_v1_metreur_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_metreur_v1_metreur_proto_goTypes,
		DependencyIndexes: file_metreur_v1_metreur_proto_depIdxs,
		MessageInfos:      file_metreur_v1_metreur_proto_msgTypes,
	}.Build()
	File_metreur_v1_metreur_proto = out.File
	file_metreur_v1_metreur_proto_goTypes = nil
	file_metreur_v1_metreur_proto_depIdxs = nil
}
